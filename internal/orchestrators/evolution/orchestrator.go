// Package evolution keeps evolution references two-sided. When a creature
// names what it evolves into or from, the named record gets the matching
// back-reference, and a stub is created when no record has that name yet.
package evolution

//go:generate mockgen -destination=mock/mock_service.go -package=evolutionmock github.com/KirkDiggler/creature-forge/internal/orchestrators/evolution Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
	creaturerepo "github.com/KirkDiggler/creature-forge/internal/repositories/creature"
)

// Service defines the interface for evolution linking
type Service interface {
	// Link applies one link job. Names are matched case-insensitively; when
	// several records share a name the earliest created one is linked.
	Link(ctx context.Context, input *LinkInput) (*LinkOutput, error)
}

// Config holds the dependencies for the evolution orchestrator
type Config struct {
	CreatureRepo creaturerepo.Repository
	IDGenerator  idgen.Generator
	Clock        clock.Clock
	Logger       *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	creatureRepo creaturerepo.Repository
	idGen        idgen.Generator
	clock        clock.Clock
	logger       *slog.Logger
}

// NewOrchestrator creates a new evolution orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		creatureRepo: cfg.CreatureRepo,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		logger:       cfg.Logger,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o, nil
}

// direction selects which back-reference a link writes
type direction int

const (
	// The source evolves into the target; the target gets EvolvesFrom
	forward direction = iota
	// The source evolves from the target; the target gets EvolvesInto
	backward
)

func (o *orchestrator) Link(ctx context.Context, input *LinkInput) (*LinkOutput, error) {
	if input == nil || input.Link == nil {
		return nil, errors.InvalidArgument("link is required")
	}
	if input.Link.CreatureID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	// The job may be stale; link from what is stored now
	got, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{ID: input.Link.CreatureID})
	if err != nil {
		if errors.IsNotFound(err) {
			o.logger.InfoContext(ctx, "skipping evolution link for deleted creature",
				"creature_id", input.Link.CreatureID)
			return &LinkOutput{Skipped: true}, nil
		}
		return nil, errors.Wrapf(err, "failed to load creature %s", input.Link.CreatureID)
	}
	source := got.Creature

	output := &LinkOutput{}
	if source.EvolvesInto != nil {
		output.Into, err = o.linkOne(ctx, source, *source.EvolvesInto, forward)
		if err != nil {
			return nil, err
		}
	}
	if source.EvolvesFrom != nil {
		output.From, err = o.linkOne(ctx, source, *source.EvolvesFrom, backward)
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

func (o *orchestrator) linkOne(ctx context.Context, source *entities.Creature, targetName string, dir direction) (*LinkResult, error) {
	targetName = strings.TrimSpace(targetName)
	if targetName == "" || entities.SameName(targetName, source.Name) {
		return nil, nil
	}

	ownerID := ""
	if source.OwnerID != nil {
		ownerID = *source.OwnerID
	}

	// An anonymous source may only link to records nobody owns
	found, err := o.creatureRepo.FindByName(ctx, &creaturerepo.FindByNameInput{
		Name:          targetName,
		OwnerID:       ownerID,
		OwnerlessOnly: ownerID == "",
	})
	switch {
	case errors.IsNotFound(err):
		return o.createStub(ctx, source, targetName, dir)
	case err != nil:
		return nil, errors.Wrapf(err, "failed to find creature named %q", targetName)
	}

	target := found.Creature
	if target.ID == source.ID {
		return nil, nil
	}

	ref := backReference(target, dir)
	if *ref != nil && entities.SameName(**ref, source.Name) {
		return &LinkResult{Creature: target}, nil
	}
	*ref = entities.Ptr(source.Name)
	target.UpdatedAt = o.clock.Now().UTC()

	updated, err := o.creatureRepo.Update(ctx, &creaturerepo.UpdateInput{Creature: target})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to link creature %s", target.ID)
	}

	o.logger.InfoContext(ctx, "evolution linked",
		"source_id", source.ID,
		"target_id", target.ID,
		"target_name", target.Name)

	return &LinkResult{Creature: updated.Creature, Updated: true}, nil
}

func (o *orchestrator) createStub(ctx context.Context, source *entities.Creature, name string, dir direction) (*LinkResult, error) {
	now := o.clock.Now().UTC()
	stub := &entities.Creature{
		ID:          o.idGen.Generate(),
		Name:        name,
		TypePrimary: entities.Ptr(entities.DefaultStubType),
		Status:      entities.StatusDraft,
		OwnerID:     source.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	*backReference(stub, dir) = entities.Ptr(source.Name)

	created, err := o.creatureRepo.Create(ctx, &creaturerepo.CreateInput{Creature: stub})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create stub creature %q", name)
	}

	o.logger.InfoContext(ctx, "evolution stub created",
		"source_id", source.ID,
		"stub_id", stub.ID,
		"stub_name", name)

	return &LinkResult{Creature: created.Creature, Created: true, Updated: true}, nil
}

func backReference(c *entities.Creature, dir direction) **string {
	if dir == forward {
		return &c.EvolvesFrom
	}
	return &c.EvolvesInto
}
