package creaturev1alpha1_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/entities"
)

func TestCreatureFromEntity(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &entities.Creature{
		ID:           "creature-1",
		Name:         "Emberling",
		TypePrimary:  entities.Ptr("Fire"),
		HP:           entities.Ptr(45),
		Attack:       entities.Ptr(60),
		Ability1:     &entities.Ability{Name: "Blaze", Description: "Stronger fire moves"},
		LevelUpMoves: []entities.LevelUpMove{{Name: "Ember", Level: 5}},
		Status:       entities.StatusPublished,
		OwnerID:      entities.Ptr("user-1"),
		CreatedAt:    created,
	}
	c.SetMalePercentage(87)

	out := creaturev1alpha1.CreatureFromEntity(c)
	require.NotNil(t, out)
	assert.Equal(t, 105, out.TotalStats)
	assert.Equal(t, "published", out.Status)
	assert.Equal(t, "user-1", out.OwnerID)
	assert.Equal(t, 13, *out.FemalePercentage)
	assert.Equal(t, "Blaze", out.Ability1.Name)
	assert.Nil(t, out.Ability2)
	assert.Equal(t, created, *out.CreatedAt)
	assert.Nil(t, out.UpdatedAt)
	assert.Nil(t, out.AIGeneratedImageURL)

	back := out.Record()
	assert.Equal(t, c.Name, back.Name)
	assert.Equal(t, c.LevelUpMoves, back.LevelUpMoves)
	assert.Equal(t, entities.StatusPublished, back.Status)
	assert.Equal(t, "user-1", *back.OwnerID)
	assert.Equal(t, created, back.CreatedAt)
}

func TestCreatureToEntityDropsServerFields(t *testing.T) {
	now := time.Now()
	in := &creaturev1alpha1.Creature{
		Name:      "Emberling",
		Status:    "published",
		OwnerID:   "someone",
		CreatedAt: &now,
	}

	c := creaturev1alpha1.CreatureToEntity(in)
	assert.Equal(t, "Emberling", c.Name)
	assert.Empty(t, c.Status)
	assert.Nil(t, c.OwnerID)
	assert.True(t, c.CreatedAt.IsZero())
}

func TestNilConversions(t *testing.T) {
	assert.Nil(t, creaturev1alpha1.CreatureToEntity(nil))
	assert.Nil(t, creaturev1alpha1.CreatureFromEntity(nil))
	assert.Nil(t, (*creaturev1alpha1.Creature)(nil).Record())
	assert.Nil(t, (*creaturev1alpha1.Session)(nil).Entity())
	assert.NotNil(t, creaturev1alpha1.CreaturesFromEntities(nil))
}

func TestUserFromEntityDropsHash(t *testing.T) {
	u := creaturev1alpha1.UserFromEntity(&entities.User{ID: "user-1", Username: "robin", PasswordHash: "secret"})
	assert.Equal(t, &creaturev1alpha1.User{ID: "user-1", Username: "robin"}, u)
}
