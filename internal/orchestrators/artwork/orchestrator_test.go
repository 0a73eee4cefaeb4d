package artwork_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/creature-forge/internal/clients/artgen"
	artgenmock "github.com/KirkDiggler/creature-forge/internal/clients/artgen/mock"
	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/artwork"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
	creaturemock "github.com/KirkDiggler/creature-forge/internal/orchestrators/creature/mock"
	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/creature-forge/internal/storage"
	storagemock "github.com/KirkDiggler/creature-forge/internal/storage/mock"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockStore    *storagemock.MockStore
	mockArt      *artgenmock.MockClient
	mockCreature *creaturemock.MockService
	orchestrator artwork.Service
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = storagemock.NewMockStore(s.ctrl)
	s.mockArt = artgenmock.NewMockClient(s.ctrl)
	s.mockCreature = creaturemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = artwork.NewOrchestrator(&artwork.Config{
		Store:           s.mockStore,
		ArtClient:       s.mockArt,
		CreatureService: s.mockCreature,
		IDGenerator:     idgen.NewSequential("img"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestUploadDrawingStoresAndAttaches() {
	s.mockStore.EXPECT().Put(s.ctx, &storage.PutInput{
		Bucket:      storage.BucketDrawings,
		Name:        "img_1.png",
		ContentType: "image/png",
		Data:        pngBytes,
	}).Return(&storage.PutOutput{URL: "http://media/drawings/img_1.png", Key: "drawings/img_1.png"}, nil)

	s.mockCreature.EXPECT().AttachImages(s.ctx, &creature.AttachImagesInput{
		EditSessionID:      "edit-1",
		OriginalDrawingURL: entities.Ptr("http://media/drawings/img_1.png"),
	}).Return(&creature.AttachImagesOutput{Creature: &entities.Creature{ID: "c1", Name: "Emberling"}}, nil)

	out, err := s.orchestrator.UploadDrawing(s.ctx, &artwork.UploadDrawingInput{
		EditSessionID: "edit-1",
		Data:          pngBytes,
	})
	s.Require().NoError(err)
	s.Equal("http://media/drawings/img_1.png", out.URL)
	s.Equal("image/png", out.ContentType)
	s.Require().NotNil(out.Creature)
	s.Equal("c1", out.Creature.ID)
}

func (s *OrchestratorTestSuite) TestUploadDrawingWithoutSessionSkipsAttach() {
	s.mockStore.EXPECT().Put(s.ctx, gomock.Any()).
		Return(&storage.PutOutput{URL: "http://media/drawings/img_1.png"}, nil)

	out, err := s.orchestrator.UploadDrawing(s.ctx, &artwork.UploadDrawingInput{Data: pngBytes})
	s.Require().NoError(err)
	s.Nil(out.Creature)
}

func (s *OrchestratorTestSuite) TestUploadDrawingSurvivesAttachFailure() {
	s.mockStore.EXPECT().Put(s.ctx, gomock.Any()).
		Return(&storage.PutOutput{URL: "http://media/drawings/img_1.png"}, nil)
	s.mockCreature.EXPECT().AttachImages(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("database busy"))

	out, err := s.orchestrator.UploadDrawing(s.ctx, &artwork.UploadDrawingInput{
		EditSessionID: "edit-1",
		Data:          pngBytes,
	})
	s.Require().NoError(err)
	s.Equal("http://media/drawings/img_1.png", out.URL)
	s.Nil(out.Creature)
}

func (s *OrchestratorTestSuite) TestUploadDrawingRejectsBadInput() {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not an image", data: []byte("just some words, not a picture")},
		{name: "too large", data: append(append([]byte{}, pngBytes...), make([]byte, artwork.MaxUploadBytes)...)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.UploadDrawing(s.ctx, &artwork.UploadDrawingInput{Data: tc.data})
			s.True(errors.IsInvalidArgument(err))
			s.NotEmpty(errors.UserMessage(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestDescribeDrawing() {
	s.mockArt.EXPECT().DescribeImage(s.ctx, &artgen.DescribeImageInput{
		Image:    pngBytes,
		MIMEType: "image/png",
		Hint:     "it breathes bubbles",
	}).Return(&artgen.DescribeImageOutput{Description: "A round blue fish with tiny wings."}, nil)

	out, err := s.orchestrator.DescribeDrawing(s.ctx, &artwork.DescribeDrawingInput{
		Image: pngBytes,
		Hint:  "  it breathes bubbles ",
	})
	s.Require().NoError(err)
	s.Equal("A round blue fish with tiny wings.", out.Description)
}

func (s *OrchestratorTestSuite) TestDescribeDrawingKeepsBackendCode() {
	busy := errors.ResourceExhausted("rate limited").WithUserMessage(artgen.MessageBusy)
	s.mockArt.EXPECT().DescribeImage(s.ctx, gomock.Any()).Return(nil, busy)

	_, err := s.orchestrator.DescribeDrawing(s.ctx, &artwork.DescribeDrawingInput{Image: pngBytes})
	s.True(errors.IsResourceExhausted(err))
	s.Equal(artgen.MessageBusy, errors.UserMessage(err))
}

func (s *OrchestratorTestSuite) TestGenerateArtworkStoresInlineBytes() {
	form := &entities.Creature{
		ID:            "c1",
		Name:          "Emberling",
		TypePrimary:   entities.Ptr(entities.TypeFire),
		DesiredVisual: entities.Ptr("fluffy with a flame tail"),
	}

	s.mockArt.EXPECT().GenerateImage(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *artgen.GenerateImageInput) (*artgen.GenerateImageOutput, error) {
			s.Contains(input.Prompt, "A small fox with a flame tail")
			s.Contains(input.Prompt, "Fire type")
			s.Contains(input.Prompt, "fluffy with a flame tail")
			s.Equal(artwork.NegativePrompt, input.NegativePrompt)
			return &artgen.GenerateImageOutput{Data: pngBytes, MIMEType: "image/png"}, nil
		})
	s.mockStore.EXPECT().Put(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *storage.PutInput) (*storage.PutOutput, error) {
			s.Equal(storage.BucketArtwork, input.Bucket)
			s.Equal("img_1.png", input.Name)
			return &storage.PutOutput{URL: "http://media/artwork/img_1.png"}, nil
		})
	s.mockCreature.EXPECT().AttachImages(s.ctx, &creature.AttachImagesInput{
		EditSessionID:       "edit-1",
		RecordID:            "c1",
		AIGeneratedImageURL: entities.Ptr("http://media/artwork/img_1.png"),
	}).Return(&creature.AttachImagesOutput{Creature: form}, nil)

	out, err := s.orchestrator.GenerateArtwork(s.ctx, &artwork.GenerateArtworkInput{
		EditSessionID: "edit-1",
		Description:   "A small fox with a flame tail.",
		Creature:      form,
	})
	s.Require().NoError(err)
	s.Equal("http://media/artwork/img_1.png", out.URL)
	s.NotEmpty(out.Prompt)
}

func (s *OrchestratorTestSuite) TestGenerateArtworkPublishesStorageURI() {
	s.mockArt.EXPECT().GenerateImage(s.ctx, gomock.Any()).
		Return(&artgen.GenerateImageOutput{URI: "gs://bucket/out/1.png"}, nil)

	out, err := s.orchestrator.GenerateArtwork(s.ctx, &artwork.GenerateArtworkInput{
		Description: "A sleepy cloud with legs",
	})
	s.Require().NoError(err)
	s.Equal("https://storage.googleapis.com/bucket/out/1.png", out.URL)
	s.Nil(out.Creature)
}

func (s *OrchestratorTestSuite) TestGenerateArtworkSafetyRefusal() {
	refused := errors.FailedPrecondition("blocked").WithUserMessage(artgen.MessageUnsafe)
	s.mockArt.EXPECT().GenerateImage(s.ctx, gomock.Any()).Return(nil, refused)

	_, err := s.orchestrator.GenerateArtwork(s.ctx, &artwork.GenerateArtworkInput{
		Description: "A dragon",
	})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(artgen.MessageUnsafe, errors.UserMessage(err))
}

func (s *OrchestratorTestSuite) TestGenerateArtworkNeedsSomethingToDraw() {
	_, err := s.orchestrator.GenerateArtwork(s.ctx, &artwork.GenerateArtworkInput{
		Creature: &entities.Creature{Name: "Emberling"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestWithoutArtClientStudioIsOffline() {
	orch, err := artwork.NewOrchestrator(&artwork.Config{
		Store:           s.mockStore,
		CreatureService: s.mockCreature,
		IDGenerator:     idgen.NewSequential("img"),
	})
	s.Require().NoError(err)

	_, err = orch.DescribeDrawing(s.ctx, &artwork.DescribeDrawingInput{Image: pngBytes})
	s.True(errors.IsUnavailable(err))

	_, err = orch.GenerateArtwork(s.ctx, &artwork.GenerateArtworkInput{Description: "A fox"})
	s.True(errors.IsUnavailable(err))
	s.Equal(artgen.MessageOffline, errors.UserMessage(err))
}
