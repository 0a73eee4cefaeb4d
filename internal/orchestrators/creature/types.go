package creature

import (
	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// AutosaveStatus is what the editor shows next to the form
type AutosaveStatus string

// Autosave statuses
const (
	AutosaveIdle    AutosaveStatus = "idle"
	AutosavePending AutosaveStatus = "pending"
	AutosaveSaving  AutosaveStatus = "saving"
	AutosaveSaved   AutosaveStatus = "saved"
	AutosaveError   AutosaveStatus = "error"
)

// SaveInput is shared by every path that persists an editing session:
// create, autosave, save draft and submit
type SaveInput struct {
	Session *entities.Session
	// EditSessionID identifies the editing session. Saves in one session
	// always resolve to the same record.
	EditSessionID string
	// Creature carries the full field set. A non-empty ID targets that record.
	Creature *entities.Creature
}

// SaveOutput defines the response for a save
type SaveOutput struct {
	Creature *entities.Creature
	// Created is true when this save inserted the record
	Created bool
}

// AutosaveOutput reports how a background save went. Failures are reported
// here, never as an error.
type AutosaveOutput struct {
	Status   AutosaveStatus
	Creature *entities.Creature
	// Skipped is true when nothing was written because the name was blank
	Skipped bool
	// Message is a friendly description of a failure
	Message string
}

// GetInput defines the request for getting a creature
type GetInput struct {
	ID string
}

// GetOutput defines the response for getting a creature
type GetOutput struct {
	Creature *entities.Creature
}

// UpdateInput defines the request for replacing a creature's fields
type UpdateInput struct {
	Session  *entities.Session
	Creature *entities.Creature
}

// UpdateOutput defines the response for updating a creature
type UpdateOutput struct {
	Creature *entities.Creature
}

// DeleteInput defines the request for deleting a creature
type DeleteInput struct {
	Session *entities.Session
	ID      string
	// Confirm must be true; the creator confirms before anything is deleted
	Confirm bool
}

// DeleteOutput defines the response for deleting a creature
type DeleteOutput struct{}

// ListInput defines the gallery filters
type ListInput struct {
	Type      string
	OwnerID   string
	Status    entities.Status
	NameQuery string
	Sort      string
	PageSize  int
	PageToken string
}

// ListOutput defines one gallery page
type ListOutput struct {
	Creatures     []*entities.Creature
	NextPageToken string
	TotalSize     int
}

// GetEditSessionInput defines the request for resolving an editing session
type GetEditSessionInput struct {
	EditSessionID string
}

// GetEditSessionOutput defines the record an editing session persists to
type GetEditSessionOutput struct {
	RecordID string
}

// AttachImagesInput sets image references on the record an editing session
// (or explicit record ID) points at. Nil URLs are left unchanged.
type AttachImagesInput struct {
	Session             *entities.Session
	EditSessionID       string
	RecordID            string
	OriginalDrawingURL  *string
	AIGeneratedImageURL *string
}

// AttachImagesOutput carries the updated record, or nil when the session has
// not persisted a record yet
type AttachImagesOutput struct {
	Creature *entities.Creature
}
