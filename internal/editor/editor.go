// Package editor holds the state of one creature editing session on the
// client side and saves it the way the browser form does: a quiet autosave
// after the creator stops typing, plus explicit draft and submit actions.
package editor

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
)

// DefaultDebounce is the quiet period after the last edit before autosave
const DefaultDebounce = 3 * time.Second

const defaultSaveTimeout = 30 * time.Second

// Backend persists editing sessions. The creature service and the API
// client both satisfy it.
type Backend interface {
	Autosave(ctx context.Context, input *creature.SaveInput) (*creature.AutosaveOutput, error)
	SaveDraft(ctx context.Context, input *creature.SaveInput) (*creature.SaveOutput, error)
	Submit(ctx context.Context, input *creature.SaveInput) (*creature.SaveOutput, error)
}

// Config holds the dependencies for an editor
type Config struct {
	Backend Backend
	// EditSessionID identifies this editing session to the server
	EditSessionID string
	Session       *entities.Session
	// Initial seeds the form, e.g. when editing an existing record
	Initial  *entities.Creature
	Debounce time.Duration
	// SaveTimeout bounds each background autosave
	SaveTimeout time.Duration
	Clock       clock.Clock
	Logger      *slog.Logger
	// OnStatus is called after every status change, outside the lock
	OnStatus func(status creature.AutosaveStatus, message string)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Backend == nil {
		vb.RequiredField("Backend")
	}
	if strings.TrimSpace(c.EditSessionID) == "" {
		vb.RequiredField("EditSessionID")
	}
	if c.Debounce < 0 {
		vb.Field("Debounce", "must not be negative")
	}

	return vb.Build()
}

// Editor is safe for concurrent use
type Editor struct {
	backend       Backend
	editSessionID string
	session       *entities.Session
	debounce      time.Duration
	saveTimeout   time.Duration
	clock         clock.Clock
	logger        *slog.Logger
	onStatus      func(creature.AutosaveStatus, string)

	mu       sync.Mutex
	form     *entities.Creature
	recordID string
	status   creature.AutosaveStatus
	message  string
	timer    clock.Timer
	// revision counts edits; an autosave only settles the status when no
	// edit arrived while it was in flight
	revision uint64
}

// New creates an editor
func New(cfg *Config) (*Editor, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	e := &Editor{
		backend:       cfg.Backend,
		editSessionID: cfg.EditSessionID,
		session:       cfg.Session,
		debounce:      cfg.Debounce,
		saveTimeout:   cfg.SaveTimeout,
		clock:         cfg.Clock,
		logger:        cfg.Logger,
		onStatus:      cfg.OnStatus,
		form:          &entities.Creature{},
		status:        creature.AutosaveIdle,
	}
	if cfg.Initial != nil {
		e.form = cfg.Initial.Clone()
		e.recordID = cfg.Initial.ID
	}
	if e.debounce == 0 {
		e.debounce = DefaultDebounce
	}
	if e.saveTimeout <= 0 {
		e.saveTimeout = defaultSaveTimeout
	}
	if e.clock == nil {
		e.clock = clock.New()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e, nil
}

// Edit applies fn to the form and schedules an autosave
func (e *Editor) Edit(fn func(c *entities.Creature)) {
	e.mu.Lock()
	fn(e.form)
	e.revision++
	e.scheduleLocked()
	status, message := e.setStatusLocked(creature.AutosavePending, "")
	e.mu.Unlock()

	e.notify(status, message)
}

// Set parses value into the named field and schedules an autosave. An
// empty value clears an optional field. A value that does not parse leaves
// the form unchanged.
func (e *Editor) Set(field, value string) error {
	e.mu.Lock()
	if err := ApplyField(e.form, field, value); err != nil {
		e.mu.Unlock()
		return err
	}
	e.revision++
	e.scheduleLocked()
	status, message := e.setStatusLocked(creature.AutosavePending, "")
	e.mu.Unlock()

	e.notify(status, message)
	return nil
}

// SetMalePercentage sets the ratio; the female share follows immediately
func (e *Editor) SetMalePercentage(male int) {
	e.Edit(func(c *entities.Creature) { c.SetMalePercentage(male) })
}

// SetGenderless clears the ratio
func (e *Editor) SetGenderless() {
	e.Edit(func(c *entities.Creature) { c.SetGenderless() })
}

// Form returns a copy of the current field state
func (e *Editor) Form() *entities.Creature {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form.Clone()
}

// RecordID is the ID of the persisted record, empty until the first save
func (e *Editor) RecordID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recordID
}

// Status returns the autosave status and, after a failure, its message
func (e *Editor) Status() (creature.AutosaveStatus, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status, e.message
}

// SaveDraft cancels any pending autosave and saves the draft now
func (e *Editor) SaveDraft(ctx context.Context) (*entities.Creature, error) {
	return e.saveNow(ctx, e.backend.SaveDraft)
}

// Submit cancels any pending autosave and finishes the creature
func (e *Editor) Submit(ctx context.Context) (*entities.Creature, error) {
	return e.saveNow(ctx, e.backend.Submit)
}

// Close cancels a pending autosave without saving
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelLocked()
}

func (e *Editor) saveNow(
	ctx context.Context,
	save func(context.Context, *creature.SaveInput) (*creature.SaveOutput, error),
) (*entities.Creature, error) {
	e.mu.Lock()
	e.cancelLocked()
	input := e.inputLocked()
	status, message := e.setStatusLocked(creature.AutosaveSaving, "")
	e.mu.Unlock()
	e.notify(status, message)

	out, err := save(ctx, input)

	e.mu.Lock()
	if err != nil {
		// The form is untouched; the creator can try again
		status, message = e.setStatusLocked(creature.AutosaveError, errors.UserMessage(err))
	} else {
		e.rememberLocked(out.Creature)
		status, message = e.setStatusLocked(creature.AutosaveSaved, "")
	}
	e.mu.Unlock()
	e.notify(status, message)

	if err != nil {
		return nil, err
	}
	return out.Creature, nil
}

// autosave runs when the debounce timer fires
func (e *Editor) autosave() {
	e.mu.Lock()
	e.timer = nil
	// Nothing is persisted until the creature has a name
	if !e.form.HasName() {
		status, message := e.setStatusLocked(creature.AutosaveSaved, "")
		e.mu.Unlock()
		e.notify(status, message)
		return
	}
	revision := e.revision
	input := e.inputLocked()
	status, message := e.setStatusLocked(creature.AutosaveSaving, "")
	e.mu.Unlock()
	e.notify(status, message)

	ctx, cancel := context.WithTimeout(context.Background(), e.saveTimeout)
	defer cancel()

	out, err := e.backend.Autosave(ctx, input)
	if err != nil {
		out = &creature.AutosaveOutput{Status: creature.AutosaveError, Message: errors.UserMessage(err)}
	}
	if out.Status == creature.AutosaveError {
		e.logger.Warn("autosave failed",
			"edit_session_id", e.editSessionID,
			"message", out.Message,
			"error", err)
	}

	e.mu.Lock()
	if out.Creature != nil {
		e.rememberLocked(out.Creature)
	}
	if e.revision == revision {
		status, message = e.setStatusLocked(out.Status, out.Message)
	} else {
		status, message = e.status, e.message
	}
	e.mu.Unlock()
	e.notify(status, message)
}

func (e *Editor) scheduleLocked() {
	e.cancelLocked()
	e.timer = e.clock.AfterFunc(e.debounce, e.autosave)
}

func (e *Editor) cancelLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Editor) inputLocked() *creature.SaveInput {
	form := e.form.Clone()
	if e.recordID != "" {
		form.ID = e.recordID
	}
	return &creature.SaveInput{
		Session:       e.session,
		EditSessionID: e.editSessionID,
		Creature:      form,
	}
}

func (e *Editor) rememberLocked(saved *entities.Creature) {
	if saved == nil {
		return
	}
	if e.recordID == "" {
		e.recordID = saved.ID
	}
	// Image URLs attached server-side show up in the form
	if e.form.OriginalDrawingURL == nil {
		e.form.OriginalDrawingURL = saved.OriginalDrawingURL
	}
	if e.form.AIGeneratedImageURL == nil {
		e.form.AIGeneratedImageURL = saved.AIGeneratedImageURL
	}
}

func (e *Editor) setStatusLocked(status creature.AutosaveStatus, message string) (creature.AutosaveStatus, string) {
	e.status = status
	e.message = message
	return status, message
}

func (e *Editor) notify(status creature.AutosaveStatus, message string) {
	if e.onStatus != nil {
		e.onStatus(status, message)
	}
}
