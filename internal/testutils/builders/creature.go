// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// CreatureBuilder provides a fluent interface for building test creatures
type CreatureBuilder struct {
	creature *entities.Creature
}

// NewCreatureBuilder creates a new builder with a name and draft status
func NewCreatureBuilder() *CreatureBuilder {
	now := time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)
	return &CreatureBuilder{
		creature: &entities.Creature{
			ID:        "creature-test-123",
			Name:      "Emberling",
			Status:    entities.StatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the record ID
func (b *CreatureBuilder) WithID(id string) *CreatureBuilder {
	b.creature.ID = id
	return b
}

// WithName sets the name
func (b *CreatureBuilder) WithName(name string) *CreatureBuilder {
	b.creature.Name = name
	return b
}

// WithOwner sets the owner
func (b *CreatureBuilder) WithOwner(ownerID string) *CreatureBuilder {
	b.creature.OwnerID = entities.Ptr(ownerID)
	return b
}

// WithTypes sets the elemental types. An empty secondary leaves it unset.
func (b *CreatureBuilder) WithTypes(primary, secondary string) *CreatureBuilder {
	b.creature.TypePrimary = entities.Ptr(primary)
	if secondary != "" {
		b.creature.TypeSecondary = entities.Ptr(secondary)
	}
	return b
}

// WithStats sets all six battle statistics
func (b *CreatureBuilder) WithStats(hp, attack, defense, spAttack, spDefense, speed int) *CreatureBuilder {
	b.creature.HP = entities.Ptr(hp)
	b.creature.Attack = entities.Ptr(attack)
	b.creature.Defense = entities.Ptr(defense)
	b.creature.SpAttack = entities.Ptr(spAttack)
	b.creature.SpDefense = entities.Ptr(spDefense)
	b.creature.Speed = entities.Ptr(speed)
	return b
}

// WithEvolution sets the evolution references; empty strings are left unset
func (b *CreatureBuilder) WithEvolution(from, into string) *CreatureBuilder {
	if from != "" {
		b.creature.EvolvesFrom = entities.Ptr(from)
	}
	if into != "" {
		b.creature.EvolvesInto = entities.Ptr(into)
	}
	return b
}

// WithSpeciesNumber sets the species number
func (b *CreatureBuilder) WithSpeciesNumber(n int) *CreatureBuilder {
	b.creature.SpeciesNumber = entities.Ptr(n)
	return b
}

// WithDrawing sets the uploaded drawing URL
func (b *CreatureBuilder) WithDrawing(url string) *CreatureBuilder {
	b.creature.OriginalDrawingURL = entities.Ptr(url)
	return b
}

// Published marks the creature submitted
func (b *CreatureBuilder) Published() *CreatureBuilder {
	b.creature.Status = entities.StatusPublished
	return b
}

// CreatedAt sets both timestamps
func (b *CreatureBuilder) CreatedAt(t time.Time) *CreatureBuilder {
	b.creature.CreatedAt = t
	b.creature.UpdatedAt = t
	return b
}

// Build returns a copy of the built creature
func (b *CreatureBuilder) Build() *entities.Creature {
	return b.creature.Clone()
}
