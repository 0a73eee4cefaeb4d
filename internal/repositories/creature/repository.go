// Package creature defines the interface for creature record persistence
package creature

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturemock github.com/KirkDiggler/creature-forge/internal/repositories/creature Repository

import (
	"context"

	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// Sort orders for List
const (
	SortNewest        = "newest"
	SortOldest        = "oldest"
	SortName          = "name"
	SortSpeciesNumber = "species_number"
)

// Page size limits for List
const (
	DefaultPageSize = 24
	MaxPageSize     = 100
)

// Repository defines the interface for creature persistence
type Repository interface {
	// Create inserts a new creature
	// Returns errors.InvalidArgument for a nil creature or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Upsert inserts the creature or, when its ID exists, replaces every field
	// except the creation time and owner. A published record stays published
	// and nil image URLs keep the stored ones.
	// Returns errors.InvalidArgument for a nil creature or empty ID
	Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error)

	// Get retrieves a creature by ID
	// Returns errors.NotFound if the creature doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces every field of an existing creature except the
	// creation time and owner
	// Returns errors.NotFound if the creature doesn't exist
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes a creature by ID
	// Returns errors.NotFound if the creature doesn't exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns a filtered, sorted page of creatures
	// Returns errors.InvalidArgument for an unknown sort or bad page token
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// FindByName returns the earliest-created creature whose name matches
	// case-insensitively
	// Returns errors.NotFound if no creature has that name
	FindByName(ctx context.Context, input *FindByNameInput) (*FindByNameOutput, error)
}

// CreateInput defines the input for creating a creature
type CreateInput struct {
	Creature *entities.Creature
}

// CreateOutput defines the output for creating a creature
type CreateOutput struct {
	Creature *entities.Creature
}

// UpsertInput defines the input for creating or replacing a creature
type UpsertInput struct {
	Creature *entities.Creature
}

// UpsertOutput defines the output for creating or replacing a creature
type UpsertOutput struct {
	Creature *entities.Creature
	// Created is true when no record with the ID existed before
	Created bool
}

// GetInput defines the input for getting a creature
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a creature
type GetOutput struct {
	Creature *entities.Creature
}

// UpdateInput defines the input for updating a creature
type UpdateInput struct {
	Creature *entities.Creature
}

// UpdateOutput defines the output for updating a creature
type UpdateOutput struct {
	Creature *entities.Creature
}

// DeleteInput defines the input for deleting a creature
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a creature
type DeleteOutput struct{}

// ListInput defines the filters, order and page for listing creatures
type ListInput struct {
	// Type matches either elemental type
	Type    string
	OwnerID string
	Status  entities.Status
	// NameQuery matches names containing the text, case-insensitively
	NameQuery string
	Sort      string
	PageSize  int
	PageToken string
}

// ListOutput defines one page of creatures
type ListOutput struct {
	Creatures     []*entities.Creature
	NextPageToken string
	TotalSize     int
}

// FindByNameInput defines the input for finding a creature by name
type FindByNameInput struct {
	Name string
	// OwnerID, when set, restricts matches to that owner's records and
	// records without an owner
	OwnerID string
	// OwnerlessOnly restricts matches to records without an owner and takes
	// precedence over OwnerID
	OwnerlessOnly bool
}

// FindByNameOutput defines the output for finding a creature by name
type FindByNameOutput struct {
	Creature *entities.Creature
}
