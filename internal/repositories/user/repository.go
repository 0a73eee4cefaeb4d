// Package user defines the interface for user account persistence
package user

//go:generate mockgen -destination=mock/mock_repository.go -package=usermock github.com/KirkDiggler/creature-forge/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// Repository defines the interface for user persistence
type Repository interface {
	// Create stores a new user
	// Returns errors.AlreadyExists if the username is taken, ignoring case
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a user by ID
	// Returns errors.NotFound if the user doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// GetByUsername retrieves a user by username, ignoring case
	// Returns errors.NotFound if no user has that username
	GetByUsername(ctx context.Context, input *GetByUsernameInput) (*GetByUsernameOutput, error)
}

// CreateInput defines the input for creating a user
type CreateInput struct {
	User *entities.User
}

// CreateOutput defines the output for creating a user
type CreateOutput struct {
	User *entities.User
}

// GetInput defines the input for getting a user
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a user
type GetOutput struct {
	User *entities.User
}

// GetByUsernameInput defines the input for looking up a user by username
type GetByUsernameInput struct {
	Username string
}

// GetByUsernameOutput defines the output for looking up a user by username
type GetByUsernameOutput struct {
	User *entities.User
}
