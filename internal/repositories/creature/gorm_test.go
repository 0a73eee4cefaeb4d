package creature_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/repositories/creature"
	"github.com/KirkDiggler/creature-forge/internal/testutils"
	"github.com/KirkDiggler/creature-forge/internal/testutils/builders"
)

type GormRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo creature.Repository
	ctx  context.Context
	base time.Time
}

func TestGormRepositorySuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}

func (s *GormRepositoryTestSuite) SetupTest() {
	db := testutils.CreateTestDB(s.T(), creature.Migrate)

	repo, err := creature.NewGormRepository(&creature.GormConfig{DB: db})
	s.Require().NoError(err)

	s.db = db
	s.repo = repo
	s.ctx = context.Background()
	s.base = testutils.FixedTime
}

func (s *GormRepositoryTestSuite) create(c *entities.Creature) *entities.Creature {
	out, err := s.repo.Create(s.ctx, &creature.CreateInput{Creature: c})
	s.Require().NoError(err)
	return out.Creature
}

func (s *GormRepositoryTestSuite) TestNewGormRepositoryRequiresDB() {
	_, err := creature.NewGormRepository(&creature.GormConfig{})
	s.Error(err)
}

func (s *GormRepositoryTestSuite) TestCreateAndGetRoundTrip() {
	c := builders.NewCreatureBuilder().
		WithID("c1").
		WithOwner("user_1").
		WithTypes(entities.TypeFire, entities.TypeFlying).
		WithStats(45, 60, 40, 70, 50, 65).
		WithEvolution("", "Blazewing").
		Build()
	c.Ability1 = &entities.Ability{Name: "Blaze", Description: "Powers up fire moves"}
	c.HiddenAbility = &entities.Ability{Name: "Flash Fire"}
	c.LevelUpMoves = []entities.LevelUpMove{{Name: "Ember", Level: 1}, {Name: "Flame Wheel", Level: 16}}
	c.TMMoves = []string{"Flamethrower"}
	c.Height = entities.Ptr(0.6)
	c.HeightUnit = entities.Ptr("m")
	c.SetMalePercentage(87)

	s.create(c)

	got, err := s.repo.Get(s.ctx, &creature.GetInput{ID: "c1"})
	s.Require().NoError(err)
	s.Equal(c, got.Creature)
}

func (s *GormRepositoryTestSuite) TestOptionalFieldsStayNull() {
	s.create(&entities.Creature{ID: "c1", Name: "Emberling"})

	got, err := s.repo.Get(s.ctx, &creature.GetInput{ID: "c1"})
	s.Require().NoError(err)

	for _, stat := range got.Creature.Stats() {
		s.Nil(stat)
	}
	s.Nil(got.Creature.AIGeneratedImageURL)
	s.Nil(got.Creature.Ability1)
	s.Nil(got.Creature.LevelUpMoves)
	s.Equal(entities.StatusDraft, got.Creature.Status)
	s.False(got.Creature.CreatedAt.IsZero())
}

func (s *GormRepositoryTestSuite) TestCreateDuplicateID() {
	s.create(&entities.Creature{ID: "c1", Name: "Emberling"})

	_, err := s.repo.Create(s.ctx, &creature.CreateInput{Creature: &entities.Creature{ID: "c1", Name: "Other"}})
	s.True(errors.IsAlreadyExists(err))
}

func (s *GormRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, &creature.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, &creature.CreateInput{Creature: &entities.Creature{Name: "No ID"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *GormRepositoryTestSuite) TestUpsertCreatesThenReplaces() {
	first := builders.NewCreatureBuilder().WithID("c1").WithOwner("user_1").CreatedAt(s.base).Build()
	first.HP = entities.Ptr(40)

	out, err := s.repo.Upsert(s.ctx, &creature.UpsertInput{Creature: first})
	s.Require().NoError(err)
	s.True(out.Created)

	second := first.Clone()
	second.HP = nil
	second.TypePrimary = entities.Ptr(entities.TypeFire)
	second.OwnerID = entities.Ptr("user_2")
	second.CreatedAt = s.base.Add(time.Hour)
	second.UpdatedAt = s.base.Add(time.Hour)

	out, err = s.repo.Upsert(s.ctx, &creature.UpsertInput{Creature: second})
	s.Require().NoError(err)
	s.False(out.Created)

	s.Nil(out.Creature.HP)
	s.Equal(entities.TypeFire, *out.Creature.TypePrimary)
	s.Equal("user_1", *out.Creature.OwnerID)
	s.True(s.base.Equal(out.Creature.CreatedAt))
	s.True(s.base.Add(time.Hour).Equal(out.Creature.UpdatedAt))
}

func (s *GormRepositoryTestSuite) TestUpsertKeepsPublishedStatusAndImages() {
	first := builders.NewCreatureBuilder().WithID("c1").Published().
		WithDrawing("http://localhost/media/drawings/c1.png").Build()
	_, err := s.repo.Upsert(s.ctx, &creature.UpsertInput{Creature: first})
	s.Require().NoError(err)

	late := builders.NewCreatureBuilder().WithID("c1").WithName("Emberling Jr").Build()
	out, err := s.repo.Upsert(s.ctx, &creature.UpsertInput{Creature: late})
	s.Require().NoError(err)

	s.Equal("Emberling Jr", out.Creature.Name)
	s.Equal(entities.StatusPublished, out.Creature.Status)
	s.Require().NotNil(out.Creature.OriginalDrawingURL)
	s.Equal("http://localhost/media/drawings/c1.png", *out.Creature.OriginalDrawingURL)
}

func (s *GormRepositoryTestSuite) TestUpdate() {
	s.create(builders.NewCreatureBuilder().WithID("c1").WithOwner("user_1").Build())

	s.Run("clears fields set to nil", func() {
		c := builders.NewCreatureBuilder().WithID("c1").WithName("Emberlord").Published().Build()

		out, err := s.repo.Update(s.ctx, &creature.UpdateInput{Creature: c})
		s.Require().NoError(err)
		s.Equal("Emberlord", out.Creature.Name)
		s.Equal(entities.StatusPublished, out.Creature.Status)
		s.Equal("user_1", *out.Creature.OwnerID)
	})

	s.Run("missing record", func() {
		c := builders.NewCreatureBuilder().WithID("nope").Build()
		_, err := s.repo.Update(s.ctx, &creature.UpdateInput{Creature: c})
		s.True(errors.IsNotFound(err))
	})
}

func (s *GormRepositoryTestSuite) TestDelete() {
	s.create(&entities.Creature{ID: "c1", Name: "Emberling"})

	_, err := s.repo.Delete(s.ctx, &creature.DeleteInput{ID: "c1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &creature.GetInput{ID: "c1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &creature.DeleteInput{ID: "c1"})
	s.True(errors.IsNotFound(err))
}

func (s *GormRepositoryTestSuite) TestFindByNameEarliestWins() {
	s.create(builders.NewCreatureBuilder().WithID("late").WithName("Blazewing").CreatedAt(s.base.Add(time.Minute)).Build())
	s.create(builders.NewCreatureBuilder().WithID("early").WithName("blazewing").CreatedAt(s.base).Build())

	out, err := s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "  BLAZEWING "})
	s.Require().NoError(err)
	s.Equal("early", out.Creature.ID)

	_, err = s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "Nobody"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "blazewing", OwnerID: "user_1"})
	s.Require().NoError(err)
}

func (s *GormRepositoryTestSuite) TestFindByNameScopedToOwner() {
	s.create(builders.NewCreatureBuilder().WithID("theirs").WithName("Blazewing").WithOwner("user_2").CreatedAt(s.base).Build())
	s.create(builders.NewCreatureBuilder().WithID("mine").WithName("Blazewing").WithOwner("user_1").CreatedAt(s.base.Add(time.Minute)).Build())

	out, err := s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "Blazewing", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Equal("mine", out.Creature.ID)

	out, err = s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "Blazewing"})
	s.Require().NoError(err)
	s.Equal("theirs", out.Creature.ID)

	_, err = s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "Blazewing", OwnerlessOnly: true})
	s.True(errors.IsNotFound(err))

	s.create(builders.NewCreatureBuilder().WithID("nobody").WithName("Blazewing").CreatedAt(s.base.Add(2 * time.Minute)).Build())
	out, err = s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "blazewing", OwnerlessOnly: true})
	s.Require().NoError(err)
	s.Equal("nobody", out.Creature.ID)

	_, err = s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "Blazewing", OwnerID: "user_3"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: " "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *GormRepositoryTestSuite) TestNameMatchingFoldsAccentedCapitals() {
	s.create(builders.NewCreatureBuilder().WithID("evoli").WithName("Évoli").CreatedAt(s.base).Build())
	s.create(builders.NewCreatureBuilder().WithID("zap").WithName("Zap").CreatedAt(s.base.Add(time.Minute)).Build())

	for _, name := range []string{"Évoli", "ÉVOLI", " évoli "} {
		out, err := s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: name})
		s.Require().NoError(err, name)
		s.Equal("evoli", out.Creature.ID)
	}

	list, err := s.repo.List(s.ctx, &creature.ListInput{NameQuery: "ÉVO"})
	s.Require().NoError(err)
	s.Equal([]string{"evoli"}, ids(list.Creatures))

	// Sorted by folded name, so the accented capital lands after "zap"
	list, err = s.repo.List(s.ctx, &creature.ListInput{Sort: creature.SortName})
	s.Require().NoError(err)
	s.Equal([]string{"zap", "evoli"}, ids(list.Creatures))
}

func (s *GormRepositoryTestSuite) TestUpdateRefreshesNameKey() {
	c := s.create(builders.NewCreatureBuilder().WithID("c1").WithName("Sparkit").Build())
	c.Name = "Ölfin"
	_, err := s.repo.Update(s.ctx, &creature.UpdateInput{Creature: c})
	s.Require().NoError(err)

	out, err := s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "ÖLFIN"})
	s.Require().NoError(err)
	s.Equal("c1", out.Creature.ID)

	_, err = s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "sparkit"})
	s.True(errors.IsNotFound(err))
}

func (s *GormRepositoryTestSuite) TestMigrateBackfillsNameKey() {
	s.create(builders.NewCreatureBuilder().WithID("c1").WithName("Évoli").Build())
	s.Require().NoError(s.db.Exec("UPDATE creatures SET name_key = ''").Error)

	_, err := s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "évoli"})
	s.True(errors.IsNotFound(err))

	s.Require().NoError(creature.Migrate(s.db))

	out, err := s.repo.FindByName(s.ctx, &creature.FindByNameInput{Name: "évoli"})
	s.Require().NoError(err)
	s.Equal("c1", out.Creature.ID)
}

func (s *GormRepositoryTestSuite) seedGallery() {
	s.create(builders.NewCreatureBuilder().WithID("a").WithName("Aqualet").
		WithTypes(entities.TypeWater, "").WithOwner("user_1").WithSpeciesNumber(3).
		CreatedAt(s.base).Build())
	s.create(builders.NewCreatureBuilder().WithID("b").WithName("Blazewing").
		WithTypes(entities.TypeFire, entities.TypeFlying).WithOwner("user_2").Published().
		CreatedAt(s.base.Add(time.Minute)).Build())
	s.create(builders.NewCreatureBuilder().WithID("c").WithName("Cinder_Pup").
		WithTypes(entities.TypeFlying, entities.TypeFire).WithOwner("user_1").WithSpeciesNumber(1).Published().
		CreatedAt(s.base.Add(2 * time.Minute)).Build())
}

func ids(list []*entities.Creature) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func (s *GormRepositoryTestSuite) TestListFiltersAndSorts() {
	s.seedGallery()

	testCases := []struct {
		name  string
		input *creature.ListInput
		want  []string
	}{
		{name: "default newest first", input: &creature.ListInput{}, want: []string{"c", "b", "a"}},
		{name: "oldest", input: &creature.ListInput{Sort: creature.SortOldest}, want: []string{"a", "b", "c"}},
		{name: "by name", input: &creature.ListInput{Sort: creature.SortName}, want: []string{"a", "b", "c"}},
		{name: "species number nulls last", input: &creature.ListInput{Sort: creature.SortSpeciesNumber}, want: []string{"c", "a", "b"}},
		{name: "type matches either slot", input: &creature.ListInput{Type: entities.TypeFire}, want: []string{"c", "b"}},
		{name: "owner", input: &creature.ListInput{OwnerID: "user_1"}, want: []string{"c", "a"}},
		{name: "status", input: &creature.ListInput{Status: entities.StatusDraft}, want: []string{"a"}},
		{name: "name query", input: &creature.ListInput{NameQuery: "WING"}, want: []string{"b"}},
		{name: "underscore is literal", input: &creature.ListInput{NameQuery: "r_p"}, want: []string{"c"}},
		{name: "combined filters", input: &creature.ListInput{Type: entities.TypeFire, OwnerID: "user_1"}, want: []string{"c"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.List(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.want, ids(out.Creatures))
			s.Equal(len(tc.want), out.TotalSize)
			s.Empty(out.NextPageToken)
		})
	}
}

func (s *GormRepositoryTestSuite) TestListPagination() {
	for i := 0; i < 5; i++ {
		s.create(builders.NewCreatureBuilder().
			WithID(fmt.Sprintf("c%d", i)).
			WithName(fmt.Sprintf("Creature %d", i)).
			CreatedAt(s.base.Add(time.Duration(i) * time.Minute)).
			Build())
	}

	var (
		seen  []string
		token string
	)
	for page := 0; page < 3; page++ {
		out, err := s.repo.List(s.ctx, &creature.ListInput{Sort: creature.SortOldest, PageSize: 2, PageToken: token})
		s.Require().NoError(err)
		s.Equal(5, out.TotalSize)
		seen = append(seen, ids(out.Creatures)...)
		token = out.NextPageToken
	}

	s.Equal([]string{"c0", "c1", "c2", "c3", "c4"}, seen)
	s.Empty(token)
}

func (s *GormRepositoryTestSuite) TestListRejectsBadInput() {
	_, err := s.repo.List(s.ctx, &creature.ListInput{Sort: "random"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, &creature.ListInput{PageToken: "abc"})
	s.True(errors.IsInvalidArgument(err))
}
