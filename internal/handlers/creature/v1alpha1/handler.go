// Package v1alpha1 handles the creature grpc service interface
package v1alpha1

import (
	"context"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/artwork"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/auth"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CreatureService creature.Service
	ArtworkService  artwork.Service
	AuthService     auth.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CreatureService == nil {
		vb.RequiredField("CreatureService")
	}
	if c.ArtworkService == nil {
		vb.RequiredField("ArtworkService")
	}
	if c.AuthService == nil {
		vb.RequiredField("AuthService")
	}
	return vb.Build()
}

// Handler implements the creature gRPC service
type Handler struct {
	creaturev1alpha1.UnimplementedCreatureServiceServer
	creatureService creature.Service
	artworkService  artwork.Service
	authService     auth.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid handler config")
	}

	return &Handler{
		creatureService: cfg.CreatureService,
		artworkService:  cfg.ArtworkService,
		authService:     cfg.AuthService,
	}, nil
}

// Register creates an account and logs it in
func (h *Handler) Register(
	ctx context.Context,
	req *creaturev1alpha1.RegisterRequest,
) (*creaturev1alpha1.RegisterResponse, error) {
	output, err := h.authService.Register(ctx, &auth.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.RegisterResponse{
		User:    creaturev1alpha1.UserFromEntity(output.User),
		Session: creaturev1alpha1.SessionFromEntity(output.Session),
	}, nil
}

// Login starts a session
func (h *Handler) Login(
	ctx context.Context,
	req *creaturev1alpha1.LoginRequest,
) (*creaturev1alpha1.LoginResponse, error) {
	output, err := h.authService.Login(ctx, &auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.LoginResponse{
		Session: creaturev1alpha1.SessionFromEntity(output.Session),
	}, nil
}

// Logout ends the session the call's bearer token names
func (h *Handler) Logout(
	ctx context.Context,
	_ *creaturev1alpha1.LogoutRequest,
) (*creaturev1alpha1.LogoutResponse, error) {
	session := SessionFromContext(ctx)
	if session == nil {
		return nil, errors.ToGRPCError(errors.Unauthenticated("not logged in"))
	}

	if _, err := h.authService.Logout(ctx, &auth.LogoutInput{Token: session.Token}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.LogoutResponse{}, nil
}

// CreateCreature persists a new draft
func (h *Handler) CreateCreature(
	ctx context.Context,
	req *creaturev1alpha1.SaveRequest,
) (*creaturev1alpha1.SaveResponse, error) {
	return h.save(ctx, req, h.creatureService.CreateCreature)
}

// SaveDraft is the explicit "save draft" action
func (h *Handler) SaveDraft(
	ctx context.Context,
	req *creaturev1alpha1.SaveRequest,
) (*creaturev1alpha1.SaveResponse, error) {
	return h.save(ctx, req, h.creatureService.SaveDraft)
}

// SubmitCreature finishes the creation flow
func (h *Handler) SubmitCreature(
	ctx context.Context,
	req *creaturev1alpha1.SaveRequest,
) (*creaturev1alpha1.SaveResponse, error) {
	return h.save(ctx, req, h.creatureService.Submit)
}

type saveFunc func(context.Context, *creature.SaveInput) (*creature.SaveOutput, error)

func (h *Handler) save(
	ctx context.Context,
	req *creaturev1alpha1.SaveRequest,
	fn saveFunc,
) (*creaturev1alpha1.SaveResponse, error) {
	if req.Creature == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("creature is required"))
	}

	output, err := fn(ctx, &creature.SaveInput{
		Session:       SessionFromContext(ctx),
		EditSessionID: req.EditSessionID,
		Creature:      creaturev1alpha1.CreatureToEntity(req.Creature),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.SaveResponse{
		Creature: creaturev1alpha1.CreatureFromEntity(output.Creature),
		Created:  output.Created,
	}, nil
}

// Autosave is the silent background save. Failed saves come back as an
// error status, not an RPC error.
func (h *Handler) Autosave(
	ctx context.Context,
	req *creaturev1alpha1.SaveRequest,
) (*creaturev1alpha1.AutosaveResponse, error) {
	input := &creature.SaveInput{
		Session:       SessionFromContext(ctx),
		EditSessionID: req.EditSessionID,
		Creature:      creaturev1alpha1.CreatureToEntity(req.Creature),
	}
	if input.Creature == nil {
		input.Creature = &entities.Creature{}
	}

	output, err := h.creatureService.Autosave(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.AutosaveResponse{
		Status:   string(output.Status),
		Creature: creaturev1alpha1.CreatureFromEntity(output.Creature),
		Skipped:  output.Skipped,
		Message:  output.Message,
	}, nil
}

// GetCreature returns one record
func (h *Handler) GetCreature(
	ctx context.Context,
	req *creaturev1alpha1.GetCreatureRequest,
) (*creaturev1alpha1.GetCreatureResponse, error) {
	output, err := h.creatureService.GetCreature(ctx, &creature.GetInput{ID: req.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.GetCreatureResponse{
		Creature: creaturev1alpha1.CreatureFromEntity(output.Creature),
	}, nil
}

// UpdateCreature replaces a record's fields from the edit page
func (h *Handler) UpdateCreature(
	ctx context.Context,
	req *creaturev1alpha1.UpdateCreatureRequest,
) (*creaturev1alpha1.UpdateCreatureResponse, error) {
	if req.Creature == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("creature is required"))
	}

	output, err := h.creatureService.UpdateCreature(ctx, &creature.UpdateInput{
		Session:  SessionFromContext(ctx),
		Creature: creaturev1alpha1.CreatureToEntity(req.Creature),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.UpdateCreatureResponse{
		Creature: creaturev1alpha1.CreatureFromEntity(output.Creature),
	}, nil
}

// DeleteCreature removes a record after the creator confirmed
func (h *Handler) DeleteCreature(
	ctx context.Context,
	req *creaturev1alpha1.DeleteCreatureRequest,
) (*creaturev1alpha1.DeleteCreatureResponse, error) {
	_, err := h.creatureService.DeleteCreature(ctx, &creature.DeleteInput{
		Session: SessionFromContext(ctx),
		ID:      req.ID,
		Confirm: req.Confirm,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.DeleteCreatureResponse{}, nil
}

// ListCreatures returns a gallery page
func (h *Handler) ListCreatures(
	ctx context.Context,
	req *creaturev1alpha1.ListCreaturesRequest,
) (*creaturev1alpha1.ListCreaturesResponse, error) {
	ownerID := req.OwnerID
	if req.Mine {
		session := SessionFromContext(ctx)
		if session == nil {
			return nil, errors.ToGRPCError(
				errors.Unauthenticated("mine requires a session").
					WithUserMessage("Log in to see your own creatures."))
		}
		ownerID = session.UserID
	}

	output, err := h.creatureService.ListCreatures(ctx, &creature.ListInput{
		Type:      req.Type,
		OwnerID:   ownerID,
		Status:    entities.Status(req.Status),
		NameQuery: req.NameQuery,
		Sort:      req.Sort,
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.ListCreaturesResponse{
		Creatures:     creaturev1alpha1.CreaturesFromEntities(output.Creatures),
		NextPageToken: output.NextPageToken,
		TotalSize:     output.TotalSize,
	}, nil
}

// GetEditSession reports which record an editing session saves to
func (h *Handler) GetEditSession(
	ctx context.Context,
	req *creaturev1alpha1.GetEditSessionRequest,
) (*creaturev1alpha1.GetEditSessionResponse, error) {
	output, err := h.creatureService.GetEditSession(ctx, &creature.GetEditSessionInput{
		EditSessionID: req.EditSessionID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.GetEditSessionResponse{RecordID: output.RecordID}, nil
}

// UploadDrawing stores a drawing
func (h *Handler) UploadDrawing(
	ctx context.Context,
	req *creaturev1alpha1.UploadDrawingRequest,
) (*creaturev1alpha1.UploadDrawingResponse, error) {
	output, err := h.artworkService.UploadDrawing(ctx, &artwork.UploadDrawingInput{
		Session:       SessionFromContext(ctx),
		EditSessionID: req.EditSessionID,
		RecordID:      req.RecordID,
		Data:          req.Image,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.UploadDrawingResponse{
		URL:         output.URL,
		ContentType: output.ContentType,
		Creature:    creaturev1alpha1.CreatureFromEntity(output.Creature),
	}, nil
}

// DescribeDrawing asks the vision model about a drawing
func (h *Handler) DescribeDrawing(
	ctx context.Context,
	req *creaturev1alpha1.DescribeDrawingRequest,
) (*creaturev1alpha1.DescribeDrawingResponse, error) {
	output, err := h.artworkService.DescribeDrawing(ctx, &artwork.DescribeDrawingInput{
		Image: req.Image,
		Hint:  req.Hint,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.DescribeDrawingResponse{Description: output.Description}, nil
}

// GenerateArtwork paints finished artwork for the form state
func (h *Handler) GenerateArtwork(
	ctx context.Context,
	req *creaturev1alpha1.GenerateArtworkRequest,
) (*creaturev1alpha1.GenerateArtworkResponse, error) {
	output, err := h.artworkService.GenerateArtwork(ctx, &artwork.GenerateArtworkInput{
		Session:       SessionFromContext(ctx),
		EditSessionID: req.EditSessionID,
		RecordID:      req.RecordID,
		Description:   req.Description,
		Creature:      creaturev1alpha1.CreatureToEntity(req.Creature),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &creaturev1alpha1.GenerateArtworkResponse{
		URL:      output.URL,
		Prompt:   output.Prompt,
		Creature: creaturev1alpha1.CreatureFromEntity(output.Creature),
	}, nil
}
