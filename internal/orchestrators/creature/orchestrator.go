// Package creature implements the creature orchestrator: saving editing
// sessions as drafts or finished records, and the gallery and detail reads.
package creature

//go:generate mockgen -destination=mock/mock_service.go -package=creaturemock github.com/KirkDiggler/creature-forge/internal/orchestrators/creature Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
	creaturerepo "github.com/KirkDiggler/creature-forge/internal/repositories/creature"
	editsession "github.com/KirkDiggler/creature-forge/internal/repositories/edit_session"
	linkqueue "github.com/KirkDiggler/creature-forge/internal/repositories/link_queue"
)

// Service defines the interface for creature operations
type Service interface {
	// CreateCreature persists a new draft. Inside an editing session that
	// already has a record, that record is updated instead.
	CreateCreature(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// SaveDraft is the explicit "save draft" action
	SaveDraft(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Autosave is the silent background save. It never returns an error for
	// a failed save; the status says what happened.
	Autosave(ctx context.Context, input *SaveInput) (*AutosaveOutput, error)

	// Submit finishes the creation flow and publishes the record
	Submit(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	GetCreature(ctx context.Context, input *GetInput) (*GetOutput, error)
	UpdateCreature(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
	DeleteCreature(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
	ListCreatures(ctx context.Context, input *ListInput) (*ListOutput, error)

	// GetEditSession resolves the record an editing session persists to
	GetEditSession(ctx context.Context, input *GetEditSessionInput) (*GetEditSessionOutput, error)

	// AttachImages records uploaded or generated image URLs on the
	// session's record as soon as they exist
	AttachImages(ctx context.Context, input *AttachImagesInput) (*AttachImagesOutput, error)
}

// Config holds the dependencies for the creature orchestrator
type Config struct {
	CreatureRepo    creaturerepo.Repository
	EditSessionRepo editsession.Repository
	// LinkQueue receives evolution-link jobs after saves. Optional.
	LinkQueue   linkqueue.Queue
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.EditSessionRepo == nil {
		vb.RequiredField("EditSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	creatureRepo    creaturerepo.Repository
	editSessionRepo editsession.Repository
	linkQueue       linkqueue.Queue
	idGen           idgen.Generator
	clock           clock.Clock
	logger          *slog.Logger
}

// NewOrchestrator creates a new creature orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		creatureRepo:    cfg.CreatureRepo,
		editSessionRepo: cfg.EditSessionRepo,
		linkQueue:       cfg.LinkQueue,
		idGen:           cfg.IDGenerator,
		clock:           cfg.Clock,
		logger:          cfg.Logger,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o, nil
}

func (o *orchestrator) CreateCreature(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input != nil && input.Creature != nil && input.Creature.ID != "" {
		return nil, errors.InvalidArgument("new creatures cannot carry an ID; update the existing record instead")
	}
	return o.save(ctx, input, entities.StatusDraft)
}

func (o *orchestrator) SaveDraft(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	return o.save(ctx, input, entities.StatusDraft)
}

func (o *orchestrator) Submit(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	return o.save(ctx, input, entities.StatusPublished)
}

func (o *orchestrator) Autosave(ctx context.Context, input *SaveInput) (*AutosaveOutput, error) {
	if input == nil || input.Creature == nil || !input.Creature.HasName() {
		return &AutosaveOutput{Status: AutosaveSaved, Skipped: true}, nil
	}

	out, err := o.save(ctx, input, entities.StatusDraft)
	if err != nil {
		o.logger.WarnContext(ctx, "autosave failed",
			"edit_session_id", input.EditSessionID,
			"creature_id", input.Creature.ID,
			"error", err)
		return &AutosaveOutput{Status: AutosaveError, Message: errors.UserMessage(err)}, nil
	}

	return &AutosaveOutput{Status: AutosaveSaved, Creature: out.Creature}, nil
}

// save validates the field set, resolves the one record the editing session
// owns and writes every field to it.
func (o *orchestrator) save(ctx context.Context, input *SaveInput, status entities.Status) (*SaveOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}

	c := input.Creature.Clone()
	c.Name = strings.TrimSpace(c.Name)
	c.NormalizeGender()

	if err := c.Validate(); err != nil {
		return nil, err
	}

	recordID, err := o.resolveRecordID(ctx, input.EditSessionID, c.ID)
	if err != nil {
		return nil, err
	}
	c.ID = recordID

	now := o.clock.Now().UTC()
	userID := sessionUserID(input.Session)

	existing, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{ID: recordID})
	switch {
	case err == nil:
		prev := existing.Creature
		if !prev.IsOwnedBy(userID) {
			return nil, errors.PermissionDeniedf("creature %s belongs to another creator", recordID)
		}
		c.OwnerID = prev.OwnerID
		c.CreatedAt = prev.CreatedAt
		// Image references are written the moment they exist and survive
		// saves from form state that has not caught up yet.
		if c.OriginalDrawingURL == nil {
			c.OriginalDrawingURL = prev.OriginalDrawingURL
		}
		if c.AIGeneratedImageURL == nil {
			c.AIGeneratedImageURL = prev.AIGeneratedImageURL
		}
		if prev.Status == entities.StatusPublished {
			status = entities.StatusPublished
		}
	case errors.IsNotFound(err):
		c.OwnerID = nil
		if userID != "" {
			c.OwnerID = entities.Ptr(userID)
		}
		c.CreatedAt = now
	default:
		return nil, errors.Wrapf(err, "failed to load creature %s", recordID)
	}

	c.Status = status
	c.UpdatedAt = now

	saved, err := o.creatureRepo.Upsert(ctx, &creaturerepo.UpsertInput{Creature: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save creature %s", recordID)
	}

	o.logger.InfoContext(ctx, "creature saved",
		"creature_id", recordID,
		"edit_session_id", input.EditSessionID,
		"status", status,
		"created", saved.Created)

	o.publishLink(ctx, saved.Creature)

	return &SaveOutput{Creature: saved.Creature, Created: saved.Created}, nil
}

// resolveRecordID picks the record a save targets: an explicit ID first,
// then the editing session's claim, then a fresh ID. A save carrying both an
// explicit ID and a session also claims the session, so later saves that
// arrive without the ID still land on the same record.
func (o *orchestrator) resolveRecordID(ctx context.Context, editSessionID, explicitID string) (string, error) {
	if editSessionID == "" {
		if explicitID != "" {
			return explicitID, nil
		}
		return o.idGen.Generate(), nil
	}

	candidate := explicitID
	if candidate == "" {
		candidate = o.idGen.Generate()
	}

	claim, err := o.editSessionRepo.Claim(ctx, &editsession.ClaimInput{
		SessionID: editSessionID,
		RecordID:  candidate,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve editing session %s", editSessionID)
	}

	if explicitID != "" && claim.RecordID != explicitID {
		o.logger.WarnContext(ctx, "save targets a record other than the session's",
			"edit_session_id", editSessionID,
			"explicit_id", explicitID,
			"session_record_id", claim.RecordID)
		return explicitID, nil
	}

	return claim.RecordID, nil
}

// publishLink emits the evolution-link job after a committed save. Its
// failure is logged and never reaches the caller.
func (o *orchestrator) publishLink(ctx context.Context, c *entities.Creature) {
	if o.linkQueue == nil || c == nil {
		return
	}
	link := c.EvolutionLink()
	if link == nil {
		return
	}

	if _, err := o.linkQueue.Push(ctx, &linkqueue.PushInput{Link: link}); err != nil {
		o.logger.ErrorContext(ctx, "failed to queue evolution link",
			"creature_id", c.ID,
			"error", err)
	}
}

func (o *orchestrator) GetCreature(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	out, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %s", input.ID)
	}

	return &GetOutput{Creature: out.Creature}, nil
}

func (o *orchestrator) UpdateCreature(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}
	if input.Creature.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	c := input.Creature.Clone()
	c.Name = strings.TrimSpace(c.Name)
	c.NormalizeGender()

	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{ID: c.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %s", c.ID)
	}
	if !existing.Creature.IsOwnedBy(sessionUserID(input.Session)) {
		return nil, errors.PermissionDeniedf("creature %s belongs to another creator", c.ID)
	}

	c.OwnerID = existing.Creature.OwnerID
	c.CreatedAt = existing.Creature.CreatedAt
	if c.Status == "" {
		c.Status = existing.Creature.Status
	}
	c.UpdatedAt = o.clock.Now().UTC()

	updated, err := o.creatureRepo.Update(ctx, &creaturerepo.UpdateInput{Creature: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update creature %s", c.ID)
	}

	o.publishLink(ctx, updated.Creature)

	return &UpdateOutput{Creature: updated.Creature}, nil
}

func (o *orchestrator) DeleteCreature(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}
	if !input.Confirm {
		return nil, errors.FailedPrecondition("deleting a creature must be confirmed").
			WithUserMessage("Are you sure? Confirm to delete this creature for good.")
	}

	existing, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %s", input.ID)
	}
	if !existing.Creature.IsOwnedBy(sessionUserID(input.Session)) {
		return nil, errors.PermissionDeniedf("creature %s belongs to another creator", input.ID)
	}

	if _, err := o.creatureRepo.Delete(ctx, &creaturerepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete creature %s", input.ID)
	}

	o.logger.InfoContext(ctx, "creature deleted", "creature_id", input.ID)

	return &DeleteOutput{}, nil
}

func (o *orchestrator) ListCreatures(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}

	vb := errors.NewValidationBuilder()
	if input.Type != "" {
		errors.ValidateEnum("type", input.Type, entities.ElementalTypes, vb)
	}
	if input.Status != "" {
		errors.ValidateEnum("status", string(input.Status),
			[]string{string(entities.StatusDraft), string(entities.StatusPublished)}, vb)
	}
	if input.Sort != "" {
		errors.ValidateEnum("sort", input.Sort, []string{
			creaturerepo.SortNewest, creaturerepo.SortOldest, creaturerepo.SortName, creaturerepo.SortSpeciesNumber,
		}, vb)
	}
	if input.PageSize < 0 {
		vb.Field("page_size", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.creatureRepo.List(ctx, &creaturerepo.ListInput{
		Type:      input.Type,
		OwnerID:   input.OwnerID,
		Status:    input.Status,
		NameQuery: input.NameQuery,
		Sort:      input.Sort,
		PageSize:  input.PageSize,
		PageToken: input.PageToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}

	return &ListOutput{
		Creatures:     out.Creatures,
		NextPageToken: out.NextPageToken,
		TotalSize:     out.TotalSize,
	}, nil
}

func (o *orchestrator) GetEditSession(ctx context.Context, input *GetEditSessionInput) (*GetEditSessionOutput, error) {
	if input == nil || input.EditSessionID == "" {
		return nil, errors.InvalidArgument("edit session ID is required")
	}

	out, err := o.editSessionRepo.Get(ctx, &editsession.GetInput{SessionID: input.EditSessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve editing session %s", input.EditSessionID)
	}

	return &GetEditSessionOutput{RecordID: out.RecordID}, nil
}

func (o *orchestrator) AttachImages(ctx context.Context, input *AttachImagesInput) (*AttachImagesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OriginalDrawingURL == nil && input.AIGeneratedImageURL == nil {
		return nil, errors.InvalidArgument("no image to attach")
	}

	recordID := input.RecordID
	if recordID == "" && input.EditSessionID != "" {
		out, err := o.editSessionRepo.Get(ctx, &editsession.GetInput{SessionID: input.EditSessionID})
		switch {
		case errors.IsNotFound(err):
			// Nothing persisted yet; the next save carries the URL
			return &AttachImagesOutput{}, nil
		case err != nil:
			return nil, errors.Wrapf(err, "failed to resolve editing session %s", input.EditSessionID)
		}
		recordID = out.RecordID
	}
	if recordID == "" {
		return &AttachImagesOutput{}, nil
	}

	existing, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{ID: recordID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &AttachImagesOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get creature %s", recordID)
	}

	c := existing.Creature
	if !c.IsOwnedBy(sessionUserID(input.Session)) {
		return nil, errors.PermissionDeniedf("creature %s belongs to another creator", recordID)
	}
	if input.OriginalDrawingURL != nil {
		c.OriginalDrawingURL = input.OriginalDrawingURL
	}
	if input.AIGeneratedImageURL != nil {
		c.AIGeneratedImageURL = input.AIGeneratedImageURL
	}
	c.UpdatedAt = o.clock.Now().UTC()

	updated, err := o.creatureRepo.Update(ctx, &creaturerepo.UpdateInput{Creature: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to attach images to creature %s", recordID)
	}

	return &AttachImagesOutput{Creature: updated.Creature}, nil
}

func sessionUserID(s *entities.Session) string {
	if s == nil {
		return ""
	}
	return s.UserID
}
