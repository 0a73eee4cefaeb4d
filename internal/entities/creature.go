// Package entities provides core data structures for creature-forge.
package entities

import (
	"strings"
	"time"
)

// Status tracks whether the creator has finished the creation flow
type Status string

const (
	// StatusDraft is a record saved by autosave or "save draft"
	StatusDraft Status = "draft"
	// StatusPublished is a record the creator submitted
	StatusPublished Status = "published"
)

// Ability is one ability slot on a creature
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LevelUpMove is a move learned at a given level
type LevelUpMove struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Creature is a user-designed creature. Name is the only required field;
// every other attribute is optional and nil when the creator left it blank.
type Creature struct {
	ID string `json:"id"`

	// Identity
	Name          string  `json:"name"`
	SpeciesNumber *int    `json:"species_number,omitempty"`
	Category      *string `json:"category,omitempty"`
	TypePrimary   *string `json:"type_primary,omitempty"`
	TypeSecondary *string `json:"type_secondary,omitempty"`
	Color         *string `json:"color,omitempty"`

	// Physical description
	Height     *float64 `json:"height,omitempty"`
	HeightUnit *string  `json:"height_unit,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	WeightUnit *string  `json:"weight_unit,omitempty"`
	BodyShape  *string  `json:"body_shape,omitempty"`
	Lore       *string  `json:"lore,omitempty"`

	// Battle statistics, 1..255 when set
	HP        *int `json:"hp,omitempty"`
	Attack    *int `json:"attack,omitempty"`
	Defense   *int `json:"defense,omitempty"`
	SpAttack  *int `json:"sp_attack,omitempty"`
	SpDefense *int `json:"sp_defense,omitempty"`
	Speed     *int `json:"speed,omitempty"`

	// Abilities
	Ability1      *Ability `json:"ability1,omitempty"`
	Ability2      *Ability `json:"ability2,omitempty"`
	Ability3      *Ability `json:"ability3,omitempty"`
	HiddenAbility *Ability `json:"hidden_ability,omitempty"`

	// Evolution, linked to other records by name
	EvolutionStage   *string `json:"evolution_stage,omitempty"`
	EvolvesFrom      *string `json:"evolves_from,omitempty"`
	EvolvesInto      *string `json:"evolves_into,omitempty"`
	EvolutionTrigger *string `json:"evolution_trigger,omitempty"`

	// Breeding
	EggGroup1        *string `json:"egg_group1,omitempty"`
	EggGroup2        *string `json:"egg_group2,omitempty"`
	Genderless       bool    `json:"genderless,omitempty"`
	MalePercentage   *int    `json:"male_percentage,omitempty"`
	FemalePercentage *int    `json:"female_percentage,omitempty"`

	// Game balance
	CatchRate      *int    `json:"catch_rate,omitempty"`
	BaseFriendship *int    `json:"base_friendship,omitempty"`
	GrowthRate     *string `json:"growth_rate,omitempty"`

	// Moves
	LevelUpMoves []LevelUpMove `json:"level_up_moves,omitempty"`
	TMMoves      []string      `json:"tm_moves,omitempty"`
	EggMoves     []string      `json:"egg_moves,omitempty"`

	// Images and art direction
	OriginalDrawingURL  *string `json:"original_drawing_url,omitempty"`
	AIGeneratedImageURL *string `json:"ai_generated_image_url,omitempty"`
	DesiredVisual       *string `json:"desired_visual,omitempty"`
	DesiredPersonality  *string `json:"desired_personality,omitempty"`

	Status    Status    `json:"status"`
	OwnerID   *string   `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// HasName reports whether the creature has a non-blank name
func (c *Creature) HasName() bool {
	return strings.TrimSpace(c.Name) != ""
}

// SetMalePercentage sets the male share and derives the female share as its
// complement in the same step. It clears the genderless flag.
func (c *Creature) SetMalePercentage(male int) {
	female := 100 - male
	c.Genderless = false
	c.MalePercentage = &male
	c.FemalePercentage = &female
}

// SetGenderless marks the creature genderless and clears both percentages
func (c *Creature) SetGenderless() {
	c.Genderless = true
	c.MalePercentage = nil
	c.FemalePercentage = nil
}

// NormalizeGender re-derives FemalePercentage from MalePercentage so records
// arriving from clients always satisfy male + female = 100.
func (c *Creature) NormalizeGender() {
	switch {
	case c.Genderless:
		c.SetGenderless()
	case c.MalePercentage != nil:
		c.SetMalePercentage(*c.MalePercentage)
	case c.FemalePercentage != nil:
		c.SetMalePercentage(100 - *c.FemalePercentage)
	}
}

// TotalStats sums the battle statistics that are set
func (c *Creature) TotalStats() int {
	total := 0
	for _, stat := range c.Stats() {
		if stat != nil {
			total += *stat
		}
	}
	return total
}

// Stats returns the six battle statistics in display order
func (c *Creature) Stats() [6]*int {
	return [6]*int{c.HP, c.Attack, c.Defense, c.SpAttack, c.SpDefense, c.Speed}
}

// Types returns the elemental types that are set
func (c *Creature) Types() []string {
	var types []string
	if c.TypePrimary != nil {
		types = append(types, *c.TypePrimary)
	}
	if c.TypeSecondary != nil {
		types = append(types, *c.TypeSecondary)
	}
	return types
}

// IsOwnedBy reports whether userID may modify the creature. Records without
// an owner, and callers without an identity, are not checked.
func (c *Creature) IsOwnedBy(userID string) bool {
	if c.OwnerID == nil || *c.OwnerID == "" || userID == "" {
		return true
	}
	return *c.OwnerID == userID
}

// NameKey is the case-folded form names are matched and sorted by
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName compares creature names the way evolution links do
func SameName(a, b string) bool {
	return NameKey(a) == NameKey(b)
}

// Clone returns a deep copy of the creature
func (c *Creature) Clone() *Creature {
	if c == nil {
		return nil
	}
	out := *c
	out.SpeciesNumber = clonePtr(c.SpeciesNumber)
	out.Category = clonePtr(c.Category)
	out.TypePrimary = clonePtr(c.TypePrimary)
	out.TypeSecondary = clonePtr(c.TypeSecondary)
	out.Color = clonePtr(c.Color)
	out.Height = clonePtr(c.Height)
	out.HeightUnit = clonePtr(c.HeightUnit)
	out.Weight = clonePtr(c.Weight)
	out.WeightUnit = clonePtr(c.WeightUnit)
	out.BodyShape = clonePtr(c.BodyShape)
	out.Lore = clonePtr(c.Lore)
	out.HP = clonePtr(c.HP)
	out.Attack = clonePtr(c.Attack)
	out.Defense = clonePtr(c.Defense)
	out.SpAttack = clonePtr(c.SpAttack)
	out.SpDefense = clonePtr(c.SpDefense)
	out.Speed = clonePtr(c.Speed)
	out.Ability1 = clonePtr(c.Ability1)
	out.Ability2 = clonePtr(c.Ability2)
	out.Ability3 = clonePtr(c.Ability3)
	out.HiddenAbility = clonePtr(c.HiddenAbility)
	out.EvolutionStage = clonePtr(c.EvolutionStage)
	out.EvolvesFrom = clonePtr(c.EvolvesFrom)
	out.EvolvesInto = clonePtr(c.EvolvesInto)
	out.EvolutionTrigger = clonePtr(c.EvolutionTrigger)
	out.EggGroup1 = clonePtr(c.EggGroup1)
	out.EggGroup2 = clonePtr(c.EggGroup2)
	out.MalePercentage = clonePtr(c.MalePercentage)
	out.FemalePercentage = clonePtr(c.FemalePercentage)
	out.CatchRate = clonePtr(c.CatchRate)
	out.BaseFriendship = clonePtr(c.BaseFriendship)
	out.GrowthRate = clonePtr(c.GrowthRate)
	out.LevelUpMoves = append([]LevelUpMove(nil), c.LevelUpMoves...)
	out.TMMoves = append([]string(nil), c.TMMoves...)
	out.EggMoves = append([]string(nil), c.EggMoves...)
	out.OriginalDrawingURL = clonePtr(c.OriginalDrawingURL)
	out.AIGeneratedImageURL = clonePtr(c.AIGeneratedImageURL)
	out.DesiredVisual = clonePtr(c.DesiredVisual)
	out.DesiredPersonality = clonePtr(c.DesiredPersonality)
	out.OwnerID = clonePtr(c.OwnerID)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
