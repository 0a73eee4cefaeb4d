package creature_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	apperrors "github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
	creaturerepo "github.com/KirkDiggler/creature-forge/internal/repositories/creature"
	creaturerepomock "github.com/KirkDiggler/creature-forge/internal/repositories/creature/mock"
	editsession "github.com/KirkDiggler/creature-forge/internal/repositories/edit_session"
	editsessionmock "github.com/KirkDiggler/creature-forge/internal/repositories/edit_session/mock"
	linkqueue "github.com/KirkDiggler/creature-forge/internal/repositories/link_queue"
	linkqueuemock "github.com/KirkDiggler/creature-forge/internal/repositories/link_queue/mock"
	"github.com/KirkDiggler/creature-forge/internal/testutils"
	"github.com/KirkDiggler/creature-forge/internal/testutils/builders"
	"github.com/KirkDiggler/creature-forge/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCreatures   *creaturerepomock.MockRepository
	mockEditSession *editsessionmock.MockRepository
	mockLinks       *linkqueuemock.MockQueue
	clock           *clock.Fake
	orchestrator    creature.Service
	ctx             context.Context
	session         *entities.Session
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCreatures = creaturerepomock.NewMockRepository(s.ctrl)
	s.mockEditSession = editsessionmock.NewMockRepository(s.ctrl)
	s.mockLinks = linkqueuemock.NewMockQueue(s.ctrl)
	s.clock = clock.NewFake(testutils.FixedTime)
	s.ctx = context.Background()
	s.session = &entities.Session{Token: "tok", UserID: testutils.TestOwnerID, DisplayName: "Robin"}

	var err error
	s.orchestrator, err = creature.NewOrchestrator(&creature.Config{
		CreatureRepo:    s.mockCreatures,
		EditSessionRepo: s.mockEditSession,
		LinkQueue:       s.mockLinks,
		IDGenerator:     idgen.NewSequential("creature"),
		Clock:           s.clock,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := creature.NewOrchestrator(nil)
	s.Error(err)

	_, err = creature.NewOrchestrator(&creature.Config{})
	s.Require().Error(err)
	fields := apperrors.GetFieldErrors(err)
	s.Contains(fields, "CreatureRepo")
	s.Contains(fields, "EditSessionRepo")
	s.Contains(fields, "IDGenerator")
}

func (s *OrchestratorTestSuite) TestSaveDraftClaimsSessionAndCreatesRecord() {
	draft := builders.NewCreatureBuilder().WithID("").WithName("  Emberling ").Build()

	s.mockEditSession.EXPECT().
		Claim(s.ctx, &editsession.ClaimInput{SessionID: "edit-1", RecordID: "creature_1"}).
		Return(&editsession.ClaimOutput{RecordID: "creature_1", Claimed: true}, nil)
	s.mockCreatures.EXPECT().
		Get(s.ctx, &creaturerepo.GetInput{ID: "creature_1"}).
		Return(nil, apperrors.NotFound("creature not found"))
	s.mockCreatures.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *creaturerepo.UpsertInput) (*creaturerepo.UpsertOutput, error) {
			c := input.Creature
			s.Equal("creature_1", c.ID)
			s.Equal("Emberling", c.Name)
			s.Equal(entities.StatusDraft, c.Status)
			s.Require().NotNil(c.OwnerID)
			s.Equal(testutils.TestOwnerID, *c.OwnerID)
			s.Equal(testutils.FixedTime, c.CreatedAt)
			s.Equal(testutils.FixedTime, c.UpdatedAt)
			return &creaturerepo.UpsertOutput{Creature: c, Created: true}, nil
		})

	out, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{
		Session:       s.session,
		EditSessionID: "edit-1",
		Creature:      draft,
	})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("creature_1", out.Creature.ID)
}

func (s *OrchestratorTestSuite) TestSaveUsesSessionRecordOnLaterSaves() {
	existing := builders.NewCreatureBuilder().WithID("creature_first").WithOwner(testutils.TestOwnerID).
		WithDrawing("http://localhost/media/drawings/a.png").Build()
	existing.CreatedAt = testutils.FixedTime.Add(-time.Hour)

	s.mockEditSession.EXPECT().
		Claim(s.ctx, gomock.Any()).
		Return(&editsession.ClaimOutput{RecordID: "creature_first"}, nil)
	s.mockCreatures.EXPECT().
		Get(s.ctx, &creaturerepo.GetInput{ID: "creature_first"}).
		Return(&creaturerepo.GetOutput{Creature: existing}, nil)
	s.mockCreatures.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *creaturerepo.UpsertInput) (*creaturerepo.UpsertOutput, error) {
			c := input.Creature
			s.Equal("creature_first", c.ID)
			s.Equal(existing.CreatedAt, c.CreatedAt)
			s.Require().NotNil(c.OriginalDrawingURL, "drawing survives a save from stale form state")
			s.Equal("http://localhost/media/drawings/a.png", *c.OriginalDrawingURL)
			return &creaturerepo.UpsertOutput{Creature: c}, nil
		})

	form := builders.NewCreatureBuilder().WithID("").WithName("Emberling").Build()
	out, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{
		Session:       s.session,
		EditSessionID: "edit-1",
		Creature:      form,
	})
	s.Require().NoError(err)
	s.False(out.Created)
}

func (s *OrchestratorTestSuite) TestSubmitPublishes() {
	mocks.ExpectFreshClaim(s.ctx, s.mockEditSession, "creature_1")
	mocks.ExpectNewRecord(s.ctx, s.mockCreatures)
	mocks.ExpectUpsertCreated(s.ctx, s.mockCreatures, func(c *entities.Creature) {
		s.Equal(entities.StatusPublished, c.Status)
		s.Nil(c.AIGeneratedImageURL)
	})

	out, err := s.orchestrator.Submit(s.ctx, &creature.SaveInput{
		Session:       s.session,
		EditSessionID: "edit-1",
		Creature:      &entities.Creature{Name: "Emberling"},
	})
	s.Require().NoError(err)
	s.Equal(entities.StatusPublished, out.Creature.Status)
}

func (s *OrchestratorTestSuite) TestDraftSaveNeverUnpublishes() {
	published := builders.NewCreatureBuilder().WithID("creature_1").Published().Build()

	s.mockCreatures.EXPECT().Get(s.ctx, gomock.Any()).
		Return(&creaturerepo.GetOutput{Creature: published}, nil)
	s.mockCreatures.EXPECT().Upsert(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *creaturerepo.UpsertInput) (*creaturerepo.UpsertOutput, error) {
			s.Equal(entities.StatusPublished, input.Creature.Status)
			return &creaturerepo.UpsertOutput{Creature: input.Creature}, nil
		})

	_, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{
		Creature: &entities.Creature{ID: "creature_1", Name: "Emberling"},
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestSaveRejectsOtherOwnersRecord() {
	theirs := builders.NewCreatureBuilder().WithID("creature_1").WithOwner("someone_else").Build()

	s.mockCreatures.EXPECT().Get(s.ctx, gomock.Any()).
		Return(&creaturerepo.GetOutput{Creature: theirs}, nil)

	_, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{
		Session:  s.session,
		Creature: &entities.Creature{ID: "creature_1", Name: "Emberling"},
	})
	s.True(apperrors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestSaveValidatesBeforeWriting() {
	_, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{
		EditSessionID: "edit-1",
		Creature:      &entities.Creature{Name: "Emberling", HP: entities.Ptr(300)},
	})
	s.Require().Error(err)
	s.True(apperrors.IsInvalidArgument(err))
	s.Contains(apperrors.GetFieldErrors(err), "hp")

	_, err = s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{Creature: &entities.Creature{Name: "   "}})
	s.Contains(apperrors.GetFieldErrors(err), "name")

	_, err = s.orchestrator.SaveDraft(s.ctx, nil)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveDerivesFemalePercentage() {
	mocks.ExpectNewRecord(s.ctx, s.mockCreatures)
	mocks.ExpectUpsertCreated(s.ctx, s.mockCreatures, func(c *entities.Creature) {
		s.Require().NotNil(c.FemalePercentage)
		s.Equal(25, *c.FemalePercentage)
	})

	_, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{
		Creature: &entities.Creature{Name: "Emberling", MalePercentage: entities.Ptr(75)},
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestSaveQueuesEvolutionLink() {
	mocks.ExpectNewRecord(s.ctx, s.mockCreatures)
	mocks.ExpectUpsertCreated(s.ctx, s.mockCreatures, nil)
	s.mockLinks.EXPECT().Push(s.ctx, &linkqueue.PushInput{Link: &entities.EvolutionLink{
		CreatureID:  "creature_1",
		Name:        "Emberling",
		OwnerID:     testutils.TestOwnerID,
		EvolvesInto: "Blazewing",
	}}).Return(&linkqueue.PushOutput{}, nil)

	c := builders.NewCreatureBuilder().WithID("").WithEvolution("", "Blazewing").Build()
	_, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{Session: s.session, Creature: c})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestLinkQueueFailureDoesNotFailSave() {
	mocks.ExpectNewRecord(s.ctx, s.mockCreatures)
	mocks.ExpectUpsertCreated(s.ctx, s.mockCreatures, nil)
	s.mockLinks.EXPECT().Push(s.ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	c := builders.NewCreatureBuilder().WithID("").WithEvolution("Sparkit", "").Build()
	out, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{Creature: c})
	s.Require().NoError(err)
	s.NotNil(out.Creature)
}

func (s *OrchestratorTestSuite) TestAutosaveSkipsBlankName() {
	out, err := s.orchestrator.Autosave(s.ctx, &creature.SaveInput{
		EditSessionID: "edit-1",
		Creature:      &entities.Creature{Name: "  ", Lore: entities.Ptr("likes naps")},
	})
	s.Require().NoError(err)
	s.Equal(creature.AutosaveSaved, out.Status)
	s.True(out.Skipped)
	s.Nil(out.Creature)
}

func (s *OrchestratorTestSuite) TestAutosaveReportsFailureAsStatus() {
	s.mockEditSession.EXPECT().Claim(s.ctx, gomock.Any()).
		Return(nil, apperrors.Unavailable("redis unavailable"))

	out, err := s.orchestrator.Autosave(s.ctx, &creature.SaveInput{
		EditSessionID: "edit-1",
		Creature:      &entities.Creature{Name: "Emberling"},
	})
	s.Require().NoError(err)
	s.Equal(creature.AutosaveError, out.Status)
	s.NotEmpty(out.Message)
	s.False(out.Skipped)
}

func (s *OrchestratorTestSuite) TestCreateRejectsExplicitID() {
	_, err := s.orchestrator.CreateCreature(s.ctx, &creature.SaveInput{
		Creature: &entities.Creature{ID: "creature_9", Name: "Emberling"},
	})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdatePreservesOwnerAndCreation() {
	existing := builders.NewCreatureBuilder().WithID("creature_1").WithOwner(testutils.TestOwnerID).Build()
	existing.CreatedAt = testutils.FixedTime.Add(-48 * time.Hour)

	s.mockCreatures.EXPECT().Get(s.ctx, &creaturerepo.GetInput{ID: "creature_1"}).
		Return(&creaturerepo.GetOutput{Creature: existing}, nil)
	s.mockCreatures.EXPECT().Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *creaturerepo.UpdateInput) (*creaturerepo.UpdateOutput, error) {
			c := input.Creature
			s.Equal(existing.CreatedAt, c.CreatedAt)
			s.Equal(testutils.TestOwnerID, *c.OwnerID)
			s.Equal(entities.StatusDraft, c.Status)
			s.Equal("Emberling Prime", c.Name)
			return &creaturerepo.UpdateOutput{Creature: c}, nil
		})

	out, err := s.orchestrator.UpdateCreature(s.ctx, &creature.UpdateInput{
		Session:  s.session,
		Creature: &entities.Creature{ID: "creature_1", Name: "Emberling Prime", OwnerID: entities.Ptr("hijack")},
	})
	s.Require().NoError(err)
	s.Equal("Emberling Prime", out.Creature.Name)
}

func (s *OrchestratorTestSuite) TestDeleteRequiresConfirmation() {
	_, err := s.orchestrator.DeleteCreature(s.ctx, &creature.DeleteInput{Session: s.session, ID: "creature_1"})
	s.True(apperrors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDeleteChecksOwnership() {
	theirs := builders.NewCreatureBuilder().WithID("creature_1").WithOwner("someone_else").Build()
	s.mockCreatures.EXPECT().Get(s.ctx, gomock.Any()).Return(&creaturerepo.GetOutput{Creature: theirs}, nil)

	_, err := s.orchestrator.DeleteCreature(s.ctx, &creature.DeleteInput{
		Session: s.session, ID: "creature_1", Confirm: true,
	})
	s.True(apperrors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestDeleteConfirmed() {
	mine := builders.NewCreatureBuilder().WithID("creature_1").WithOwner(testutils.TestOwnerID).Build()
	s.mockCreatures.EXPECT().Get(s.ctx, gomock.Any()).Return(&creaturerepo.GetOutput{Creature: mine}, nil)
	s.mockCreatures.EXPECT().Delete(s.ctx, &creaturerepo.DeleteInput{ID: "creature_1"}).
		Return(&creaturerepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteCreature(s.ctx, &creature.DeleteInput{
		Session: s.session, ID: "creature_1", Confirm: true,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestListValidatesFilters() {
	_, err := s.orchestrator.ListCreatures(s.ctx, &creature.ListInput{Type: "Plasma", Sort: "random"})
	s.Require().Error(err)
	fields := apperrors.GetFieldErrors(err)
	s.Contains(fields, "type")
	s.Contains(fields, "sort")
}

func (s *OrchestratorTestSuite) TestListPassesFilters() {
	s.mockCreatures.EXPECT().List(s.ctx, &creaturerepo.ListInput{
		Type:     entities.TypeFire,
		Sort:     creaturerepo.SortName,
		PageSize: 10,
	}).Return(&creaturerepo.ListOutput{
		Creatures: []*entities.Creature{testutils.CreateTestCreature("")},
		TotalSize: 1,
	}, nil)

	out, err := s.orchestrator.ListCreatures(s.ctx, &creature.ListInput{
		Type: entities.TypeFire, Sort: creaturerepo.SortName, PageSize: 10,
	})
	s.Require().NoError(err)
	s.Len(out.Creatures, 1)
	s.Equal(1, out.TotalSize)
}

func (s *OrchestratorTestSuite) TestAttachImagesWithoutRecordIsNoop() {
	s.mockEditSession.EXPECT().Get(s.ctx, &editsession.GetInput{SessionID: "edit-1"}).
		Return(nil, apperrors.NotFound("no session"))

	out, err := s.orchestrator.AttachImages(s.ctx, &creature.AttachImagesInput{
		EditSessionID:      "edit-1",
		OriginalDrawingURL: entities.Ptr("http://localhost/media/drawings/a.png"),
	})
	s.Require().NoError(err)
	s.Nil(out.Creature)
}

func (s *OrchestratorTestSuite) TestAttachImagesUpdatesSessionRecord() {
	existing := builders.NewCreatureBuilder().WithID("creature_1").Build()

	s.mockEditSession.EXPECT().Get(s.ctx, gomock.Any()).
		Return(&editsession.GetOutput{RecordID: "creature_1"}, nil)
	s.mockCreatures.EXPECT().Get(s.ctx, &creaturerepo.GetInput{ID: "creature_1"}).
		Return(&creaturerepo.GetOutput{Creature: existing}, nil)
	s.mockCreatures.EXPECT().Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *creaturerepo.UpdateInput) (*creaturerepo.UpdateOutput, error) {
			s.Equal("http://localhost/media/artwork/b.png", *input.Creature.AIGeneratedImageURL)
			return &creaturerepo.UpdateOutput{Creature: input.Creature}, nil
		})

	out, err := s.orchestrator.AttachImages(s.ctx, &creature.AttachImagesInput{
		EditSessionID:       "edit-1",
		AIGeneratedImageURL: entities.Ptr("http://localhost/media/artwork/b.png"),
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Creature)
}
