package creaturev1alpha1

import (
	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// CreatureToEntity converts a wire creature to the domain record. Status,
// owner and timestamps are server-managed and dropped.
func CreatureToEntity(c *Creature) *entities.Creature {
	if c == nil {
		return nil
	}

	out := &entities.Creature{
		ID:            c.ID,
		Name:          c.Name,
		SpeciesNumber: c.SpeciesNumber,
		Category:      c.Category,
		TypePrimary:   c.TypePrimary,
		TypeSecondary: c.TypeSecondary,
		Color:         c.Color,

		Height:     c.Height,
		HeightUnit: c.HeightUnit,
		Weight:     c.Weight,
		WeightUnit: c.WeightUnit,
		BodyShape:  c.BodyShape,
		Lore:       c.Lore,

		HP:        c.HP,
		Attack:    c.Attack,
		Defense:   c.Defense,
		SpAttack:  c.SpAttack,
		SpDefense: c.SpDefense,
		Speed:     c.Speed,

		Ability1:      abilityToEntity(c.Ability1),
		Ability2:      abilityToEntity(c.Ability2),
		Ability3:      abilityToEntity(c.Ability3),
		HiddenAbility: abilityToEntity(c.HiddenAbility),

		EvolutionStage:   c.EvolutionStage,
		EvolvesFrom:      c.EvolvesFrom,
		EvolvesInto:      c.EvolvesInto,
		EvolutionTrigger: c.EvolutionTrigger,

		EggGroup1:        c.EggGroup1,
		EggGroup2:        c.EggGroup2,
		Genderless:       c.Genderless,
		MalePercentage:   c.MalePercentage,
		FemalePercentage: c.FemalePercentage,

		CatchRate:      c.CatchRate,
		BaseFriendship: c.BaseFriendship,
		GrowthRate:     c.GrowthRate,

		TMMoves:  c.TMMoves,
		EggMoves: c.EggMoves,

		OriginalDrawingURL:  c.OriginalDrawingURL,
		AIGeneratedImageURL: c.AIGeneratedImageURL,
		DesiredVisual:       c.DesiredVisual,
		DesiredPersonality:  c.DesiredPersonality,
	}

	for _, move := range c.LevelUpMoves {
		out.LevelUpMoves = append(out.LevelUpMoves, entities.LevelUpMove{Name: move.Name, Level: move.Level})
	}

	return out
}

// CreatureFromEntity converts a record to its wire form and fills TotalStats
func CreatureFromEntity(c *entities.Creature) *Creature {
	if c == nil {
		return nil
	}

	out := &Creature{
		ID:            c.ID,
		Name:          c.Name,
		SpeciesNumber: c.SpeciesNumber,
		Category:      c.Category,
		TypePrimary:   c.TypePrimary,
		TypeSecondary: c.TypeSecondary,
		Color:         c.Color,

		Height:     c.Height,
		HeightUnit: c.HeightUnit,
		Weight:     c.Weight,
		WeightUnit: c.WeightUnit,
		BodyShape:  c.BodyShape,
		Lore:       c.Lore,

		HP:         c.HP,
		Attack:     c.Attack,
		Defense:    c.Defense,
		SpAttack:   c.SpAttack,
		SpDefense:  c.SpDefense,
		Speed:      c.Speed,
		TotalStats: c.TotalStats(),

		Ability1:      abilityFromEntity(c.Ability1),
		Ability2:      abilityFromEntity(c.Ability2),
		Ability3:      abilityFromEntity(c.Ability3),
		HiddenAbility: abilityFromEntity(c.HiddenAbility),

		EvolutionStage:   c.EvolutionStage,
		EvolvesFrom:      c.EvolvesFrom,
		EvolvesInto:      c.EvolvesInto,
		EvolutionTrigger: c.EvolutionTrigger,

		EggGroup1:        c.EggGroup1,
		EggGroup2:        c.EggGroup2,
		Genderless:       c.Genderless,
		MalePercentage:   c.MalePercentage,
		FemalePercentage: c.FemalePercentage,

		CatchRate:      c.CatchRate,
		BaseFriendship: c.BaseFriendship,
		GrowthRate:     c.GrowthRate,

		TMMoves:  c.TMMoves,
		EggMoves: c.EggMoves,

		OriginalDrawingURL:  c.OriginalDrawingURL,
		AIGeneratedImageURL: c.AIGeneratedImageURL,
		DesiredVisual:       c.DesiredVisual,
		DesiredPersonality:  c.DesiredPersonality,

		Status: string(c.Status),
	}

	for _, move := range c.LevelUpMoves {
		out.LevelUpMoves = append(out.LevelUpMoves, LevelUpMove{Name: move.Name, Level: move.Level})
	}
	if c.OwnerID != nil {
		out.OwnerID = *c.OwnerID
	}
	if !c.CreatedAt.IsZero() {
		createdAt := c.CreatedAt
		out.CreatedAt = &createdAt
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

func abilityToEntity(a *Ability) *entities.Ability {
	if a == nil {
		return nil
	}
	return &entities.Ability{Name: a.Name, Description: a.Description}
}

func abilityFromEntity(a *entities.Ability) *Ability {
	if a == nil {
		return nil
	}
	return &Ability{Name: a.Name, Description: a.Description}
}

// CreaturesFromEntities never returns nil, so an empty gallery encodes as []
func CreaturesFromEntities(creatures []*entities.Creature) []*Creature {
	out := make([]*Creature, 0, len(creatures))
	for _, c := range creatures {
		out = append(out, CreatureFromEntity(c))
	}
	return out
}

// UserFromEntity drops the password hash
func UserFromEntity(u *entities.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}

func SessionFromEntity(s *entities.Session) *Session {
	if s == nil {
		return nil
	}
	return &Session{
		Token:       s.Token,
		UserID:      s.UserID,
		DisplayName: s.DisplayName,
	}
}

// Entity converts a wire session back to the domain form
func (s *Session) Entity() *entities.Session {
	if s == nil {
		return nil
	}
	return &entities.Session{
		Token:       s.Token,
		UserID:      s.UserID,
		DisplayName: s.DisplayName,
	}
}

// Record converts a creature the server returned, keeping the bookkeeping
// fields CreatureToEntity drops
func (c *Creature) Record() *entities.Creature {
	out := CreatureToEntity(c)
	if out == nil {
		return nil
	}

	out.Status = entities.Status(c.Status)
	if c.OwnerID != "" {
		out.OwnerID = entities.Ptr(c.OwnerID)
	}
	if c.CreatedAt != nil {
		out.CreatedAt = *c.CreatedAt
	}
	if c.UpdatedAt != nil {
		out.UpdatedAt = *c.UpdatedAt
	}
	return out
}
