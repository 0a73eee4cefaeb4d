package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/storage"
)

type FilesystemStoreTestSuite struct {
	suite.Suite
	cfg   *storage.FilesystemConfig
	store storage.Store
	ctx   context.Context
}

func TestFilesystemStoreSuite(t *testing.T) {
	suite.Run(t, new(FilesystemStoreTestSuite))
}

func (s *FilesystemStoreTestSuite) SetupTest() {
	s.cfg = &storage.FilesystemConfig{
		Root:          s.T().TempDir(),
		PublicBaseURL: "http://localhost:8081/media/",
	}
	store, err := storage.NewFilesystemStore(s.cfg)
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *FilesystemStoreTestSuite) TestPutWritesFileAndReturnsURL() {
	out, err := s.store.Put(s.ctx, &storage.PutInput{
		Bucket:      storage.BucketDrawings,
		Name:        "abc.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	s.Require().NoError(err)
	s.Equal("http://localhost:8081/media/drawings/abc.png", out.URL)
	s.Equal("drawings/abc.png", out.Key)

	data, err := os.ReadFile(filepath.Join(s.cfg.Root, "drawings", "abc.png"))
	s.Require().NoError(err)
	s.Equal("png-bytes", string(data))
}

func (s *FilesystemStoreTestSuite) TestPutRejectsUnsafeInput() {
	testCases := []struct {
		name   string
		bucket string
		object string
		data   []byte
	}{
		{name: "unknown bucket", bucket: "secrets", object: "a.png", data: []byte("x")},
		{name: "traversal", bucket: storage.BucketArtwork, object: "../a.png", data: []byte("x")},
		{name: "nested", bucket: storage.BucketArtwork, object: "a/b.png", data: []byte("x")},
		{name: "hidden", bucket: storage.BucketArtwork, object: ".env", data: []byte("x")},
		{name: "empty name", bucket: storage.BucketArtwork, object: "", data: []byte("x")},
		{name: "empty data", bucket: storage.BucketArtwork, object: "a.png"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.store.Put(s.ctx, &storage.PutInput{Bucket: tc.bucket, Name: tc.object, Data: tc.data})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *FilesystemStoreTestSuite) TestDeleteByURLAndKey() {
	out, err := s.store.Put(s.ctx, &storage.PutInput{Bucket: storage.BucketArtwork, Name: "art.png", Data: []byte("x")})
	s.Require().NoError(err)

	_, err = s.store.Delete(s.ctx, &storage.DeleteInput{URL: out.URL})
	s.Require().NoError(err)
	_, err = os.Stat(filepath.Join(s.cfg.Root, "artwork", "art.png"))
	s.True(os.IsNotExist(err))

	_, err = s.store.Delete(s.ctx, &storage.DeleteInput{Key: "artwork/art.png"})
	s.NoError(err)

	_, err = s.store.Delete(s.ctx, &storage.DeleteInput{URL: "https://elsewhere.example/artwork/art.png"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FilesystemStoreTestSuite) TestMediaHandlerServesObjects() {
	_, err := s.store.Put(s.ctx, &storage.PutInput{Bucket: storage.BucketDrawings, Name: "abc.png", Data: []byte("png-bytes")})
	s.Require().NoError(err)

	handler, err := storage.MediaHandler(s.cfg)
	s.Require().NoError(err)
	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/media/drawings/abc.png")
	s.Require().NoError(err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("png-bytes", string(body))

	resp, err = http.Get(srv.URL + "/media/drawings/")
	s.Require().NoError(err)
	_ = resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *FilesystemStoreTestSuite) TestConfigValidation() {
	_, err := storage.NewFilesystemStore(&storage.FilesystemConfig{Root: s.T().TempDir(), PublicBaseURL: "ftp://x"})
	s.Error(err)

	_, err = storage.NewFilesystemStore(&storage.FilesystemConfig{})
	s.Error(err)
}
