package entities

import (
	"github.com/KirkDiggler/creature-forge/internal/errors"
)

// Field limits
const (
	MaxNameLength     = 60
	MaxTextLength     = 2000
	MinStat           = 1
	MaxStat           = 255
	MaxSpeciesNumber  = 9999
	MaxMoveLevel      = 100
	MaxMovesPerList   = 40
	MaxBaseFriendship = 255
)

// Validate checks a creature's fields and reports every problem found,
// keyed by the field's wire name.
func (c *Creature) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateMaxLength("name", c.Name, MaxNameLength, vb)

	errors.ValidateOptionalRange("species_number", c.SpeciesNumber, 1, MaxSpeciesNumber, vb)
	errors.ValidateOptionalEnum("type_primary", c.TypePrimary, ElementalTypes, vb)
	errors.ValidateOptionalEnum("type_secondary", c.TypeSecondary, ElementalTypes, vb)
	if c.TypePrimary != nil && c.TypeSecondary != nil && *c.TypePrimary == *c.TypeSecondary {
		vb.Field("type_secondary", "must differ from the primary type")
	}

	if c.Height != nil && *c.Height <= 0 {
		vb.Field("height", "must be greater than 0")
	}
	if c.Weight != nil && *c.Weight <= 0 {
		vb.Field("weight", "must be greater than 0")
	}
	errors.ValidateOptionalEnum("height_unit", c.HeightUnit, HeightUnits, vb)
	errors.ValidateOptionalEnum("weight_unit", c.WeightUnit, WeightUnits, vb)
	errors.ValidateOptionalEnum("body_shape", c.BodyShape, BodyShapes, vb)
	if c.Lore != nil {
		errors.ValidateMaxLength("lore", *c.Lore, MaxTextLength, vb)
	}

	stats := map[string]*int{
		"hp":         c.HP,
		"attack":     c.Attack,
		"defense":    c.Defense,
		"sp_attack":  c.SpAttack,
		"sp_defense": c.SpDefense,
		"speed":      c.Speed,
	}
	for field, value := range stats {
		errors.ValidateOptionalRange(field, value, MinStat, MaxStat, vb)
	}

	for field, ability := range map[string]*Ability{
		"ability1":       c.Ability1,
		"ability2":       c.Ability2,
		"ability3":       c.Ability3,
		"hidden_ability": c.HiddenAbility,
	} {
		if ability == nil {
			continue
		}
		errors.ValidateRequired(field+".name", ability.Name, vb)
		errors.ValidateMaxLength(field+".description", ability.Description, MaxTextLength, vb)
	}

	errors.ValidateOptionalEnum("evolution_stage", c.EvolutionStage, EvolutionStages, vb)
	if c.EvolvesInto != nil && SameName(*c.EvolvesInto, c.Name) {
		vb.Field("evolves_into", "cannot be the creature itself")
	}
	if c.EvolvesFrom != nil && SameName(*c.EvolvesFrom, c.Name) {
		vb.Field("evolves_from", "cannot be the creature itself")
	}

	errors.ValidateOptionalEnum("egg_group1", c.EggGroup1, EggGroups, vb)
	errors.ValidateOptionalEnum("egg_group2", c.EggGroup2, EggGroups, vb)
	errors.ValidateOptionalRange("male_percentage", c.MalePercentage, 0, 100, vb)
	if c.Genderless && c.MalePercentage != nil {
		vb.Field("male_percentage", "must be empty for a genderless creature")
	}
	if c.MalePercentage != nil && c.FemalePercentage != nil && *c.MalePercentage+*c.FemalePercentage != 100 {
		vb.Field("female_percentage", "must be 100 minus the male percentage")
	}

	errors.ValidateOptionalRange("catch_rate", c.CatchRate, MinStat, MaxStat, vb)
	errors.ValidateOptionalRange("base_friendship", c.BaseFriendship, 0, MaxBaseFriendship, vb)
	errors.ValidateOptionalEnum("growth_rate", c.GrowthRate, GrowthRates, vb)

	if len(c.LevelUpMoves) > MaxMovesPerList {
		vb.Fieldf("level_up_moves", "must have at most %d moves", MaxMovesPerList)
	}
	for _, move := range c.LevelUpMoves {
		errors.ValidateRequired("level_up_moves.name", move.Name, vb)
		errors.ValidateRange("level_up_moves.level", move.Level, 1, MaxMoveLevel, vb)
	}
	if len(c.TMMoves) > MaxMovesPerList {
		vb.Fieldf("tm_moves", "must have at most %d moves", MaxMovesPerList)
	}
	if len(c.EggMoves) > MaxMovesPerList {
		vb.Fieldf("egg_moves", "must have at most %d moves", MaxMovesPerList)
	}

	errors.ValidateOptionalURL("original_drawing_url", c.OriginalDrawingURL, vb)
	errors.ValidateOptionalURL("ai_generated_image_url", c.AIGeneratedImageURL, vb)

	return vb.Build()
}
