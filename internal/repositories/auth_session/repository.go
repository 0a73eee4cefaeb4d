// Package authsession stores logged-in sessions by opaque token
package authsession

//go:generate mockgen -destination=mock/mock_repository.go -package=authsessionmock github.com/KirkDiggler/creature-forge/internal/repositories/auth_session Repository

import (
	"context"

	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// Repository defines the interface for session persistence
type Repository interface {
	// Create stores a session under its token
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get returns the session for a token
	// Returns errors.NotFound if the token is unknown
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for storing a session
type CreateInput struct {
	Session *entities.Session
}

// CreateOutput defines the output for storing a session
type CreateOutput struct{}

// GetInput defines the input for looking up a session
type GetInput struct {
	Token string
}

// GetOutput defines the output for looking up a session
type GetOutput struct {
	Session *entities.Session
}

// DeleteInput defines the input for removing a session
type DeleteInput struct {
	Token string
}

// DeleteOutput defines the output for removing a session
type DeleteOutput struct{}
