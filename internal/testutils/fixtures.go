package testutils

import (
	"time"

	"github.com/KirkDiggler/creature-forge/internal/entities"
)

const (
	// TestCreatureName is the default creature name for fixtures
	TestCreatureName = "Emberling"
	// TestOwnerID is the default owner for fixtures
	TestOwnerID = "user_test_001"
	// TestSessionID is the default editing session for fixtures
	TestSessionID = "edit_test_001"
)

// FixedTime is the timestamp fixtures and fake clocks start at
var FixedTime = time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)

// CreateTestCreature returns a draft with the fields most tests care about
func CreateTestCreature(ownerID string) *entities.Creature {
	c := &entities.Creature{
		ID:          "creature_test_001",
		Name:        TestCreatureName,
		TypePrimary: entities.Ptr(entities.TypeFire),
		Status:      entities.StatusDraft,
		CreatedAt:   FixedTime,
		UpdatedAt:   FixedTime,
	}
	if ownerID != "" {
		c.OwnerID = entities.Ptr(ownerID)
	}
	return c
}

// CreateTestUser returns a user with the given password hash
func CreateTestUser(id, username, passwordHash string) *entities.User {
	return &entities.User{
		ID:           id,
		Username:     username,
		DisplayName:  username,
		PasswordHash: passwordHash,
		CreatedAt:    FixedTime,
	}
}
