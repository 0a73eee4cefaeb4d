package storage

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/creature-forge/internal/errors"
)

// FilesystemConfig configures the filesystem store
type FilesystemConfig struct {
	// Root is the directory buckets are created under
	Root string
	// PublicBaseURL is the URL Root is served at, e.g. http://localhost:8081/media
	PublicBaseURL string
}

// Validate ensures the config is usable
func (c *FilesystemConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Root", c.Root, vb)
	errors.ValidateRequired("PublicBaseURL", c.PublicBaseURL, vb)
	if c.PublicBaseURL != "" {
		errors.ValidateOptionalURL("PublicBaseURL", &c.PublicBaseURL, vb)
	}
	return vb.Build()
}

type filesystemStore struct {
	root    string
	baseURL *url.URL
}

// NewFilesystemStore creates a store that writes blobs under cfg.Root
func NewFilesystemStore(cfg *FilesystemConfig) (Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	base, err := url.Parse(strings.TrimRight(cfg.PublicBaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid public base URL")
	}

	for _, bucket := range []string{BucketDrawings, BucketArtwork} {
		if err := os.MkdirAll(filepath.Join(cfg.Root, bucket), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create bucket %s", bucket)
		}
	}

	return &filesystemStore{
		root:    cfg.Root,
		baseURL: base,
	}, nil
}

func (s *filesystemStore) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "put canceled")
	}

	key, err := objectKey(input.Bucket, input.Name)
	if err != nil {
		return nil, err
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("data cannot be empty")
	}

	target := filepath.Join(s.root, filepath.FromSlash(key))

	// Write then rename so readers never see a partial file
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(input.Data); err != nil {
		_ = tmp.Close()
		return nil, errors.Wrap(err, "failed to write object")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close object")
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to set object permissions")
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return nil, errors.Wrap(err, "failed to store object")
	}

	return &PutOutput{URL: s.urlFor(key), Key: key}, nil
}

func (s *filesystemStore) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	key := input.Key
	if key == "" {
		var ok bool
		key, ok = s.keyFromURL(input.URL)
		if !ok {
			return nil, errors.InvalidArgumentf("URL %q is not served by this store", input.URL)
		}
	}

	bucket, name, _ := strings.Cut(key, "/")
	key, err := objectKey(bucket, name)
	if err != nil {
		return nil, err
	}

	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to delete %s", key)
	}

	return &DeleteOutput{}, nil
}

func (s *filesystemStore) urlFor(key string) string {
	u := *s.baseURL
	u.Path = path.Join(u.Path, key)
	return u.String()
}

func (s *filesystemStore) keyFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host != s.baseURL.Host {
		return "", false
	}
	prefix := strings.TrimRight(s.baseURL.Path, "/") + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}
	return strings.TrimPrefix(u.Path, prefix), true
}

func objectKey(bucket, name string) (string, error) {
	if bucket != BucketDrawings && bucket != BucketArtwork {
		return "", errors.InvalidArgumentf("unknown bucket %q", bucket)
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return "", errors.InvalidArgumentf("invalid object name %q", name)
	}
	return bucket + "/" + name, nil
}

// MediaHandler serves the store's directory read-only at the path of the
// public base URL.
func MediaHandler(cfg *FilesystemConfig) (http.Handler, error) {
	base, err := url.Parse(strings.TrimRight(cfg.PublicBaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid public base URL")
	}

	files := http.FileServer(noListing{http.Dir(cfg.Root)})
	prefix := base.Path
	if prefix == "" {
		return files, nil
	}
	return http.StripPrefix(prefix, files), nil
}

// noListing hides directory indexes
type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if stat.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
