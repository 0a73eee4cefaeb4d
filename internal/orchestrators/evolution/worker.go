package evolution

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/creature-forge/internal/errors"
	linkqueue "github.com/KirkDiggler/creature-forge/internal/repositories/link_queue"
)

const (
	// DefaultPopTimeout bounds each blocking pop so shutdown is noticed
	DefaultPopTimeout = 5 * time.Second

	defaultErrorBackoff = time.Second
)

// WorkerConfig holds the dependencies for the link worker
type WorkerConfig struct {
	Service    Service
	Queue      linkqueue.Queue
	PopTimeout time.Duration
	// ErrorBackoff is the pause after a failed pop
	ErrorBackoff time.Duration
	Logger       *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *WorkerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Queue == nil {
		vb.RequiredField("Queue")
	}

	return vb.Build()
}

// Worker drains the link queue one job at a time. A single worker never
// races itself into creating the same stub twice.
type Worker struct {
	service      Service
	queue        linkqueue.Queue
	popTimeout   time.Duration
	errorBackoff time.Duration
	logger       *slog.Logger
}

// NewWorker creates a link worker
func NewWorker(cfg *WorkerConfig) (*Worker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	w := &Worker{
		service:      cfg.Service,
		queue:        cfg.Queue,
		popTimeout:   cfg.PopTimeout,
		errorBackoff: cfg.ErrorBackoff,
		logger:       cfg.Logger,
	}
	if w.popTimeout <= 0 {
		w.popTimeout = DefaultPopTimeout
	}
	if w.errorBackoff <= 0 {
		w.errorBackoff = defaultErrorBackoff
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}

	return w, nil
}

// Run processes jobs until ctx is cancelled. Failed jobs are logged and
// dropped; a later save of the same creature queues the link again.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "evolution link worker started")
	defer w.logger.Info("evolution link worker stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}

		if _, err := w.ProcessOne(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.logger.ErrorContext(ctx, "failed to pop evolution link", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(w.errorBackoff):
			}
		}
	}
}

// ProcessOne waits up to the pop timeout for a job and applies it. It
// reports whether a job was taken. Only queue failures are returned.
func (w *Worker) ProcessOne(ctx context.Context) (bool, error) {
	popped, err := w.queue.Pop(ctx, &linkqueue.PopInput{Timeout: w.popTimeout})
	if err != nil {
		return false, err
	}
	if popped.Link == nil {
		return false, nil
	}

	out, err := w.service.Link(ctx, &LinkInput{Link: popped.Link})
	if err != nil {
		w.logger.ErrorContext(ctx, "evolution link failed",
			"creature_id", popped.Link.CreatureID,
			"error", err)
		return true, nil
	}

	w.logger.DebugContext(ctx, "evolution link processed",
		"creature_id", popped.Link.CreatureID,
		"skipped", out.Skipped)

	return true, nil
}
