package entities

// EvolutionLink asks the linker to make both sides of a creature's evolution
// references agree. It is emitted after a creature save commits.
type EvolutionLink struct {
	CreatureID  string `json:"creature_id"`
	Name        string `json:"name"`
	OwnerID     string `json:"owner_id,omitempty"`
	EvolvesInto string `json:"evolves_into,omitempty"`
	EvolvesFrom string `json:"evolves_from,omitempty"`
}

// EvolutionLink returns the link job for c, or nil when c names neither a
// predecessor nor a successor
func (c *Creature) EvolutionLink() *EvolutionLink {
	if c.EvolvesInto == nil && c.EvolvesFrom == nil {
		return nil
	}

	link := &EvolutionLink{
		CreatureID: c.ID,
		Name:       c.Name,
	}
	if c.OwnerID != nil {
		link.OwnerID = *c.OwnerID
	}
	if c.EvolvesInto != nil {
		link.EvolvesInto = *c.EvolvesInto
	}
	if c.EvolvesFrom != nil {
		link.EvolvesFrom = *c.EvolvesFrom
	}
	return link
}
