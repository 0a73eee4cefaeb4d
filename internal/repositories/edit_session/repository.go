// Package editsession maps an editing session to the one creature record it
// persists. The first save of a session claims the mapping; every later save
// resolves the same record ID.
package editsession

//go:generate mockgen -destination=mock/mock_repository.go -package=editsessionmock github.com/KirkDiggler/creature-forge/internal/repositories/edit_session Repository

import (
	"context"
)

// Repository defines the interface for editing session claims
type Repository interface {
	// Claim atomically maps the session to RecordID unless it is already
	// mapped, and returns the record ID the session resolves to
	// Returns errors.InvalidArgument for empty IDs
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)

	// Get returns the record ID a session resolves to
	// Returns errors.NotFound if the session has not persisted anything
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Release forgets a session's mapping. Releasing an unknown session is
	// not an error.
	Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error)
}

// ClaimInput defines the input for claiming a session
type ClaimInput struct {
	SessionID string
	// RecordID is used only when the session has no mapping yet
	RecordID string
}

// ClaimOutput defines the output for claiming a session
type ClaimOutput struct {
	RecordID string
	// Claimed is true when this call created the mapping
	Claimed bool
}

// GetInput defines the input for resolving a session
type GetInput struct {
	SessionID string
}

// GetOutput defines the output for resolving a session
type GetOutput struct {
	RecordID string
}

// ReleaseInput defines the input for releasing a session
type ReleaseInput struct {
	SessionID string
}

// ReleaseOutput defines the output for releasing a session
type ReleaseOutput struct{}
