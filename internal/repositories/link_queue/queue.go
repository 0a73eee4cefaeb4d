// Package linkqueue carries evolution-link jobs from the save path to the
// background linker
package linkqueue

//go:generate mockgen -destination=mock/mock_queue.go -package=linkqueuemock github.com/KirkDiggler/creature-forge/internal/repositories/link_queue Queue

import (
	"context"
	"time"

	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// Queue defines the interface for the evolution-link job queue
type Queue interface {
	// Push appends a job
	Push(ctx context.Context, input *PushInput) (*PushOutput, error)

	// Pop waits up to Timeout for the oldest job. Output.Link is nil when
	// the wait timed out.
	Pop(ctx context.Context, input *PopInput) (*PopOutput, error)

	// Len reports how many jobs are waiting
	Len(ctx context.Context) (int64, error)
}

// PushInput defines the input for enqueueing a job
type PushInput struct {
	Link *entities.EvolutionLink
}

// PushOutput defines the output for enqueueing a job
type PushOutput struct{}

// PopInput defines the input for dequeueing a job
type PopInput struct {
	Timeout time.Duration
}

// PopOutput defines the output for dequeueing a job
type PopOutput struct {
	Link *entities.EvolutionLink
}
