package evolution

import (
	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// LinkInput carries one evolution-link job
type LinkInput struct {
	Link *entities.EvolutionLink
}

// LinkOutput reports what linking did to each side
type LinkOutput struct {
	// Into is the record named by EvolvesInto, nil when unset or ignored
	Into *LinkResult
	// From is the record named by EvolvesFrom, nil when unset or ignored
	From *LinkResult
	// Skipped is true when the source record no longer exists
	Skipped bool
}

// LinkResult describes one linked record
type LinkResult struct {
	Creature *entities.Creature
	// Created is true when a stub record was created for the name
	Created bool
	// Updated is true when the back-reference was written
	Updated bool
}
