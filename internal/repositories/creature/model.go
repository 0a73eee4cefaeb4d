package creature

import (
	"time"

	"gorm.io/datatypes"

	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// creatureRow is the flat table layout. Column names follow gorm's default
// snake_case naming, so AIGeneratedImageURL is stored as ai_generated_image_url.
type creatureRow struct {
	ID string `gorm:"primaryKey;size:64"`

	Name          string `gorm:"not null;index"`
	NameKey       string `gorm:"not null;default:'';index"`
	SpeciesNumber *int
	Category      *string
	TypePrimary   *string `gorm:"index"`
	TypeSecondary *string `gorm:"index"`
	Color         *string

	Height     *float64
	HeightUnit *string
	Weight     *float64
	WeightUnit *string
	BodyShape  *string
	Lore       *string

	HP        *int
	Attack    *int
	Defense   *int
	SpAttack  *int
	SpDefense *int
	Speed     *int

	Ability1Name             *string
	Ability1Description      *string
	Ability2Name             *string
	Ability2Description      *string
	Ability3Name             *string
	Ability3Description      *string
	HiddenAbilityName        *string
	HiddenAbilityDescription *string

	EvolutionStage   *string
	EvolvesFrom      *string
	EvolvesInto      *string
	EvolutionTrigger *string

	EggGroup1        *string
	EggGroup2        *string
	Genderless       bool
	MalePercentage   *int
	FemalePercentage *int

	CatchRate      *int
	BaseFriendship *int
	GrowthRate     *string

	LevelUpMoves datatypes.JSONSlice[entities.LevelUpMove]
	TMMoves      datatypes.JSONSlice[string]
	EggMoves     datatypes.JSONSlice[string]

	OriginalDrawingURL  *string
	AIGeneratedImageURL *string
	DesiredVisual       *string
	DesiredPersonality  *string

	Status    string    `gorm:"not null;default:draft;index"`
	OwnerID   *string   `gorm:"index;size:64"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (creatureRow) TableName() string {
	return "creatures"
}

func toRow(c *entities.Creature) *creatureRow {
	row := &creatureRow{
		ID:                  c.ID,
		Name:                c.Name,
		NameKey:             entities.NameKey(c.Name),
		SpeciesNumber:       c.SpeciesNumber,
		Category:            c.Category,
		TypePrimary:         c.TypePrimary,
		TypeSecondary:       c.TypeSecondary,
		Color:               c.Color,
		Height:              c.Height,
		HeightUnit:          c.HeightUnit,
		Weight:              c.Weight,
		WeightUnit:          c.WeightUnit,
		BodyShape:           c.BodyShape,
		Lore:                c.Lore,
		HP:                  c.HP,
		Attack:              c.Attack,
		Defense:             c.Defense,
		SpAttack:            c.SpAttack,
		SpDefense:           c.SpDefense,
		Speed:               c.Speed,
		EvolutionStage:      c.EvolutionStage,
		EvolvesFrom:         c.EvolvesFrom,
		EvolvesInto:         c.EvolvesInto,
		EvolutionTrigger:    c.EvolutionTrigger,
		EggGroup1:           c.EggGroup1,
		EggGroup2:           c.EggGroup2,
		Genderless:          c.Genderless,
		MalePercentage:      c.MalePercentage,
		FemalePercentage:    c.FemalePercentage,
		CatchRate:           c.CatchRate,
		BaseFriendship:      c.BaseFriendship,
		GrowthRate:          c.GrowthRate,
		OriginalDrawingURL:  c.OriginalDrawingURL,
		AIGeneratedImageURL: c.AIGeneratedImageURL,
		DesiredVisual:       c.DesiredVisual,
		DesiredPersonality:  c.DesiredPersonality,
		Status:              string(c.Status),
		OwnerID:             c.OwnerID,
		CreatedAt:           c.CreatedAt.UTC(),
		UpdatedAt:           c.UpdatedAt.UTC(),
	}

	row.Ability1Name, row.Ability1Description = splitAbility(c.Ability1)
	row.Ability2Name, row.Ability2Description = splitAbility(c.Ability2)
	row.Ability3Name, row.Ability3Description = splitAbility(c.Ability3)
	row.HiddenAbilityName, row.HiddenAbilityDescription = splitAbility(c.HiddenAbility)

	if len(c.LevelUpMoves) > 0 {
		row.LevelUpMoves = datatypes.NewJSONSlice(c.LevelUpMoves)
	}
	if len(c.TMMoves) > 0 {
		row.TMMoves = datatypes.NewJSONSlice(c.TMMoves)
	}
	if len(c.EggMoves) > 0 {
		row.EggMoves = datatypes.NewJSONSlice(c.EggMoves)
	}
	if row.Status == "" {
		row.Status = string(entities.StatusDraft)
	}

	return row
}

func fromRow(row *creatureRow) *entities.Creature {
	c := &entities.Creature{
		ID:                  row.ID,
		Name:                row.Name,
		SpeciesNumber:       row.SpeciesNumber,
		Category:            row.Category,
		TypePrimary:         row.TypePrimary,
		TypeSecondary:       row.TypeSecondary,
		Color:               row.Color,
		Height:              row.Height,
		HeightUnit:          row.HeightUnit,
		Weight:              row.Weight,
		WeightUnit:          row.WeightUnit,
		BodyShape:           row.BodyShape,
		Lore:                row.Lore,
		HP:                  row.HP,
		Attack:              row.Attack,
		Defense:             row.Defense,
		SpAttack:            row.SpAttack,
		SpDefense:           row.SpDefense,
		Speed:               row.Speed,
		Ability1:            joinAbility(row.Ability1Name, row.Ability1Description),
		Ability2:            joinAbility(row.Ability2Name, row.Ability2Description),
		Ability3:            joinAbility(row.Ability3Name, row.Ability3Description),
		HiddenAbility:       joinAbility(row.HiddenAbilityName, row.HiddenAbilityDescription),
		EvolutionStage:      row.EvolutionStage,
		EvolvesFrom:         row.EvolvesFrom,
		EvolvesInto:         row.EvolvesInto,
		EvolutionTrigger:    row.EvolutionTrigger,
		EggGroup1:           row.EggGroup1,
		EggGroup2:           row.EggGroup2,
		Genderless:          row.Genderless,
		MalePercentage:      row.MalePercentage,
		FemalePercentage:    row.FemalePercentage,
		CatchRate:           row.CatchRate,
		BaseFriendship:      row.BaseFriendship,
		GrowthRate:          row.GrowthRate,
		OriginalDrawingURL:  row.OriginalDrawingURL,
		AIGeneratedImageURL: row.AIGeneratedImageURL,
		DesiredVisual:       row.DesiredVisual,
		DesiredPersonality:  row.DesiredPersonality,
		Status:              entities.Status(row.Status),
		OwnerID:             row.OwnerID,
		CreatedAt:           row.CreatedAt.UTC(),
		UpdatedAt:           row.UpdatedAt.UTC(),
	}

	if len(row.LevelUpMoves) > 0 {
		c.LevelUpMoves = []entities.LevelUpMove(row.LevelUpMoves)
	}
	if len(row.TMMoves) > 0 {
		c.TMMoves = []string(row.TMMoves)
	}
	if len(row.EggMoves) > 0 {
		c.EggMoves = []string(row.EggMoves)
	}

	return c
}

func splitAbility(a *entities.Ability) (*string, *string) {
	if a == nil {
		return nil, nil
	}
	var description *string
	if a.Description != "" {
		description = entities.Ptr(a.Description)
	}
	return entities.Ptr(a.Name), description
}

func joinAbility(name, description *string) *entities.Ability {
	if name == nil {
		return nil
	}
	a := &entities.Ability{Name: *name}
	if description != nil {
		a.Description = *description
	}
	return a
}
