// Package artwork runs the image pipeline: storing uploaded drawings,
// describing them with the vision model and painting finished artwork.
package artwork

//go:generate mockgen -destination=mock/mock_service.go -package=artworkmock github.com/KirkDiggler/creature-forge/internal/orchestrators/artwork Service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/KirkDiggler/creature-forge/internal/clients/artgen"
	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/creature-forge/internal/storage"
)

// MaxUploadBytes is the largest drawing accepted
const MaxUploadBytes = 10 << 20

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Service defines the interface for the image pipeline
type Service interface {
	// UploadDrawing stores the drawing right away and, when the editing
	// session already has a record, writes the URL to it
	UploadDrawing(ctx context.Context, input *UploadDrawingInput) (*UploadDrawingOutput, error)

	// DescribeDrawing asks the vision model for a short description
	DescribeDrawing(ctx context.Context, input *DescribeDrawingInput) (*DescribeDrawingOutput, error)

	// GenerateArtwork paints finished artwork and stores it
	GenerateArtwork(ctx context.Context, input *GenerateArtworkInput) (*GenerateArtworkOutput, error)
}

// Config holds the dependencies for the artwork orchestrator
type Config struct {
	Store storage.Store
	// ArtClient may be nil when no model credentials are configured; the
	// model-backed operations then report the studio offline
	ArtClient       artgen.Client
	CreatureService creature.Service
	IDGenerator     idgen.Generator
	Logger          *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.CreatureService == nil {
		vb.RequiredField("CreatureService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	store           storage.Store
	artClient       artgen.Client
	creatureService creature.Service
	idGen           idgen.Generator
	logger          *slog.Logger
}

// NewOrchestrator creates a new artwork orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		store:           cfg.Store,
		artClient:       cfg.ArtClient,
		creatureService: cfg.CreatureService,
		idGen:           cfg.IDGenerator,
		logger:          cfg.Logger,
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o, nil
}

func (o *orchestrator) UploadDrawing(ctx context.Context, input *UploadDrawingInput) (*UploadDrawingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	contentType, err := sniffImage(input.Data)
	if err != nil {
		return nil, err
	}

	put, err := o.store.Put(ctx, &storage.PutInput{
		Bucket:      storage.BucketDrawings,
		Name:        o.idGen.Generate() + imageExtensions[contentType],
		ContentType: contentType,
		Data:        input.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store drawing")
	}

	o.logger.InfoContext(ctx, "drawing uploaded",
		"url", put.URL,
		"bytes", len(input.Data),
		"edit_session_id", input.EditSessionID)

	attached := o.attach(ctx, &creature.AttachImagesInput{
		Session:            input.Session,
		EditSessionID:      input.EditSessionID,
		RecordID:           input.RecordID,
		OriginalDrawingURL: entities.Ptr(put.URL),
	})

	return &UploadDrawingOutput{
		URL:         put.URL,
		ContentType: contentType,
		Creature:    attached,
	}, nil
}

func (o *orchestrator) DescribeDrawing(ctx context.Context, input *DescribeDrawingInput) (*DescribeDrawingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	contentType, err := sniffImage(input.Image)
	if err != nil {
		return nil, err
	}
	if o.artClient == nil {
		return nil, studioOffline()
	}

	out, err := o.artClient.DescribeImage(ctx, &artgen.DescribeImageInput{
		Image:    input.Image,
		MIMEType: contentType,
		Hint:     strings.TrimSpace(input.Hint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to describe drawing")
	}

	return &DescribeDrawingOutput{Description: out.Description}, nil
}

func (o *orchestrator) GenerateArtwork(ctx context.Context, input *GenerateArtworkInput) (*GenerateArtworkOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Description) == "" && !hasVisualHints(input.Creature) {
		return nil, errors.InvalidArgument("a description or desired look is required").
			WithUserMessage("Tell the art studio what your creature looks like first!")
	}
	if o.artClient == nil {
		return nil, studioOffline()
	}

	prompt := BuildPrompt(input.Description, input.Creature)

	image, err := o.artClient.GenerateImage(ctx, &artgen.GenerateImageInput{
		Prompt:         prompt,
		NegativePrompt: NegativePrompt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate artwork")
	}

	url, err := o.storeArtwork(ctx, image)
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "artwork generated",
		"url", url,
		"edit_session_id", input.EditSessionID)

	recordID := input.RecordID
	if recordID == "" && input.Creature != nil {
		recordID = input.Creature.ID
	}
	attached := o.attach(ctx, &creature.AttachImagesInput{
		Session:             input.Session,
		EditSessionID:       input.EditSessionID,
		RecordID:            recordID,
		AIGeneratedImageURL: entities.Ptr(url),
	})

	return &GenerateArtworkOutput{
		URL:      url,
		Prompt:   prompt,
		Creature: attached,
	}, nil
}

// storeArtwork handles both result shapes: inline bytes are uploaded to the
// artwork bucket, a storage URI is published as is.
func (o *orchestrator) storeArtwork(ctx context.Context, image *artgen.GenerateImageOutput) (string, error) {
	if len(image.Data) == 0 {
		if image.URI == "" {
			return "", errors.Unavailable("image service returned no image").
				WithUserMessage(artgen.MessageOffline)
		}
		return artgen.PublicURL(image.URI), nil
	}

	contentType := image.MIMEType
	if _, ok := imageExtensions[contentType]; !ok {
		contentType = http.DetectContentType(image.Data)
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", errors.Unavailablef("image service returned %s", contentType).
			WithUserMessage(artgen.MessageOffline)
	}

	put, err := o.store.Put(ctx, &storage.PutInput{
		Bucket:      storage.BucketArtwork,
		Name:        o.idGen.Generate() + ext,
		ContentType: contentType,
		Data:        image.Data,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to store artwork")
	}

	return put.URL, nil
}

// attach writes the URL to the session's record. The blob is already stored
// and the next save carries the URL anyway, so failures are only logged.
func (o *orchestrator) attach(ctx context.Context, input *creature.AttachImagesInput) *entities.Creature {
	if input.EditSessionID == "" && input.RecordID == "" {
		return nil
	}

	out, err := o.creatureService.AttachImages(ctx, input)
	if err != nil {
		o.logger.WarnContext(ctx, "failed to attach image to creature",
			"edit_session_id", input.EditSessionID,
			"record_id", input.RecordID,
			"error", err)
		return nil
	}

	return out.Creature
}

func sniffImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.InvalidArgument("image is required").
			WithUserMessage("Pick a picture to upload first.")
	}
	if len(data) > MaxUploadBytes {
		return "", errors.InvalidArgumentf("image is %d bytes, limit is %d", len(data), MaxUploadBytes).
			WithUserMessage("That picture is too big. Try one under 10 MB.")
	}

	contentType := http.DetectContentType(data)
	if _, ok := imageExtensions[contentType]; !ok {
		return "", errors.InvalidArgumentf("unsupported image type %s", contentType).
			WithMeta("content_type", contentType).
			WithUserMessage("That file isn't a picture we can use. Try a PNG or JPEG.")
	}

	return contentType, nil
}

func hasVisualHints(c *entities.Creature) bool {
	return c != nil && (trimmed(c.DesiredVisual) != "" || trimmed(c.Color) != "" || len(c.Types()) > 0)
}

func studioOffline() error {
	return errors.Unavailable("image generation is not configured").
		WithUserMessage(artgen.MessageOffline)
}
