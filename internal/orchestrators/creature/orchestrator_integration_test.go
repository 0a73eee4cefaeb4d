package creature_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
	creaturerepo "github.com/KirkDiggler/creature-forge/internal/repositories/creature"
	editsession "github.com/KirkDiggler/creature-forge/internal/repositories/edit_session"
	linkqueue "github.com/KirkDiggler/creature-forge/internal/repositories/link_queue"
	"github.com/KirkDiggler/creature-forge/internal/testutils"
)

// IntegrationTestSuite runs the orchestrator against SQLite and miniredis
type IntegrationTestSuite struct {
	suite.Suite
	orchestrator creature.Service
	creatures    creaturerepo.Repository
	links        linkqueue.Queue
	session      *entities.Session
	ctx          context.Context
}

func (s *IntegrationTestSuite) SetupTest() {
	db := testutils.CreateTestDB(s.T(), creaturerepo.Migrate)
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.T().Cleanup(cleanup)

	var err error
	s.creatures, err = creaturerepo.NewGormRepository(&creaturerepo.GormConfig{DB: db})
	s.Require().NoError(err)
	s.links = linkqueue.NewRedisQueue(client)

	s.orchestrator, err = creature.NewOrchestrator(&creature.Config{
		CreatureRepo:    s.creatures,
		EditSessionRepo: editsession.NewRedisRepository(client, 0),
		LinkQueue:       s.links,
		IDGenerator:     idgen.NewUUID("creature"),
		Clock:           clock.NewFake(testutils.FixedTime),
	})
	s.Require().NoError(err)

	s.session = &entities.Session{Token: "tok", UserID: testutils.TestOwnerID}
	s.ctx = context.Background()
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) TestOneRecordPerEditingSession() {
	form := &entities.Creature{Name: "Emberling", TypePrimary: entities.Ptr(entities.TypeFire)}

	first, err := s.orchestrator.Autosave(s.ctx, &creature.SaveInput{
		Session: s.session, EditSessionID: "edit-1", Creature: form,
	})
	s.Require().NoError(err)
	s.Require().Equal(creature.AutosaveSaved, first.Status)
	recordID := first.Creature.ID

	form.Lore = entities.Ptr("Sleeps in warm chimneys.")
	draft, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{
		Session: s.session, EditSessionID: "edit-1", Creature: form,
	})
	s.Require().NoError(err)
	s.Equal(recordID, draft.Creature.ID)
	s.False(draft.Created)

	submitted, err := s.orchestrator.Submit(s.ctx, &creature.SaveInput{
		Session: s.session, EditSessionID: "edit-1", Creature: form,
	})
	s.Require().NoError(err)
	s.Equal(recordID, submitted.Creature.ID)

	list, err := s.creatures.List(s.ctx, &creaturerepo.ListInput{})
	s.Require().NoError(err)
	s.Equal(1, list.TotalSize)
	s.Equal(entities.StatusPublished, list.Creatures[0].Status)
}

func (s *IntegrationTestSuite) TestSubmitRacingAutosaveCreatesOneRecord() {
	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := &creature.SaveInput{
				Session:       s.session,
				EditSessionID: "edit-race",
				Creature:      &entities.Creature{Name: "Emberling"},
			}
			if i%2 == 0 {
				out, err := s.orchestrator.Autosave(s.ctx, input)
				if err == nil && out.Creature != nil {
					ids[i] = out.Creature.ID
				}
				return
			}
			out, err := s.orchestrator.Submit(s.ctx, input)
			if err == nil {
				ids[i] = out.Creature.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		s.Equal(ids[1], id)
	}

	list, err := s.creatures.List(s.ctx, &creaturerepo.ListInput{})
	s.Require().NoError(err)
	s.Equal(1, list.TotalSize)
	s.Equal(entities.StatusPublished, list.Creatures[0].Status)
}

func (s *IntegrationTestSuite) TestEmberlingScenario() {
	form := &entities.Creature{
		Name:        "Emberling",
		TypePrimary: entities.Ptr(entities.TypeFire),
		HP:          entities.Ptr(45),
		Attack:      entities.Ptr(60),
		EvolvesInto: entities.Ptr("Blazewing"),
	}
	form.SetMalePercentage(87)

	out, err := s.orchestrator.Submit(s.ctx, &creature.SaveInput{
		Session: s.session, EditSessionID: "edit-ember", Creature: form,
	})
	s.Require().NoError(err)

	got, err := s.orchestrator.GetCreature(s.ctx, &creature.GetInput{ID: out.Creature.ID})
	s.Require().NoError(err)
	s.Equal("Emberling", got.Creature.Name)
	s.Equal(87, *got.Creature.MalePercentage)
	s.Equal(13, *got.Creature.FemalePercentage)
	s.Equal(105, got.Creature.TotalStats())
	s.Nil(got.Creature.AIGeneratedImageURL)
	s.Equal(testutils.TestOwnerID, *got.Creature.OwnerID)

	pending, err := s.links.Len(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), pending)
}

func (s *IntegrationTestSuite) TestAttachImagesBeforeAndAfterFirstSave() {
	drawing := entities.Ptr("http://localhost:8081/media/drawings/d.png")

	early, err := s.orchestrator.AttachImages(s.ctx, &creature.AttachImagesInput{
		Session: s.session, EditSessionID: "edit-img", OriginalDrawingURL: drawing,
	})
	s.Require().NoError(err)
	s.Nil(early.Creature)

	saved, err := s.orchestrator.SaveDraft(s.ctx, &creature.SaveInput{
		Session: s.session, EditSessionID: "edit-img", Creature: &entities.Creature{Name: "Puddlepup"},
	})
	s.Require().NoError(err)

	late, err := s.orchestrator.AttachImages(s.ctx, &creature.AttachImagesInput{
		Session: s.session, EditSessionID: "edit-img", OriginalDrawingURL: drawing,
	})
	s.Require().NoError(err)
	s.Require().NotNil(late.Creature)
	s.Equal(saved.Creature.ID, late.Creature.ID)
	s.Equal(*drawing, *late.Creature.OriginalDrawingURL)

	// A later autosave from form state without the URL keeps it
	_, err = s.orchestrator.Autosave(s.ctx, &creature.SaveInput{
		Session: s.session, EditSessionID: "edit-img", Creature: &entities.Creature{Name: "Puddlepup"},
	})
	s.Require().NoError(err)
	got, err := s.orchestrator.GetCreature(s.ctx, &creature.GetInput{ID: saved.Creature.ID})
	s.Require().NoError(err)
	s.Equal(*drawing, *got.Creature.OriginalDrawingURL)
}
