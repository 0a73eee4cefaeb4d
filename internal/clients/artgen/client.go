// Package artgen talks to the generative image models: a vision model that
// describes a child's drawing and an image model that paints finished art.
package artgen

//go:generate mockgen -destination=mock/mock_client.go -package=artgenmock github.com/KirkDiggler/creature-forge/internal/clients/artgen Client

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/KirkDiggler/creature-forge/internal/errors"
)

// Default models
const (
	DefaultVisionModel = "gemini-2.5-flash"
	DefaultImageModel  = "imagen-4.0-generate-001"
	DefaultAspectRatio = "1:1"

	defaultTimeout = 90 * time.Second

	describeMaxTokens = 512
)

const describeInstruction = "You describe children's drawings of made-up creatures for an illustrator. " +
	"In two or three short sentences, describe the creature's body shape, colors, and notable features. " +
	"Do not mention that it is a drawing and do not guess what existing character it resembles."

// Client defines the interface to the generative models
type Client interface {
	// DescribeImage turns an image into a short visual description
	DescribeImage(ctx context.Context, input *DescribeImageInput) (*DescribeImageOutput, error)

	// GenerateImage paints one image from a prompt. The output carries
	// either inline bytes or a storage URI depending on the backend.
	GenerateImage(ctx context.Context, input *GenerateImageInput) (*GenerateImageOutput, error)
}

// DescribeImageInput defines the input for describing an image
type DescribeImageInput struct {
	Image    []byte
	MIMEType string
	// Hint is optional free text from the creator, e.g. "it breathes bubbles"
	Hint string
}

// DescribeImageOutput defines the output for describing an image
type DescribeImageOutput struct {
	Description string
}

// GenerateImageInput defines the input for generating an image
type GenerateImageInput struct {
	Prompt         string
	NegativePrompt string
	AspectRatio    string
}

// GenerateImageOutput holds exactly one of Data or URI
type GenerateImageOutput struct {
	Data     []byte
	MIMEType string
	URI      string
}

// Config configures the genai backed client
type Config struct {
	APIKey      string
	VisionModel string
	ImageModel  string
	// BaseURL overrides the API endpoint
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", c.APIKey, vb)
	return vb.Build()
}

type client struct {
	genai       *genai.Client
	visionModel string
	imageModel  string
	timeout     time.Duration
	logger      *slog.Logger
}

// New creates a client for the Gemini API
func New(ctx context.Context, cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	c := &client{
		genai:       gc,
		visionModel: cfg.VisionModel,
		imageModel:  cfg.ImageModel,
		timeout:     cfg.Timeout,
		logger:      cfg.Logger,
	}
	if c.visionModel == "" {
		c.visionModel = DefaultVisionModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c, nil
}

func (c *client) DescribeImage(ctx context.Context, input *DescribeImageInput) (*DescribeImageOutput, error) {
	if len(input.Image) == 0 {
		return nil, errors.InvalidArgument("image cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	parts := []*genai.Part{
		genai.NewPartFromBytes(input.Image, input.MIMEType),
		genai.NewPartFromText("Describe this creature."),
	}
	if hint := strings.TrimSpace(input.Hint); hint != "" {
		parts = append(parts, genai.NewPartFromText("The creator says: "+hint))
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.visionModel,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(describeInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.4),
			MaxOutputTokens:   describeMaxTokens,
			// Thinking tokens count against MaxOutputTokens on 2.5 models
			ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
		},
	)
	if err != nil {
		c.logger.WarnContext(ctx, "describe image failed", "model", c.visionModel, "error", err)
		return nil, translateError(err)
	}

	if blocked(resp) {
		return nil, safetyError("describe")
	}

	description := strings.TrimSpace(resp.Text())
	if description == "" {
		return nil, errors.Unavailable("vision model returned no description")
	}

	return &DescribeImageOutput{Description: description}, nil
}

func (c *client) GenerateImage(ctx context.Context, input *GenerateImageInput) (*GenerateImageOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.InvalidArgument("prompt cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	aspect := input.AspectRatio
	if aspect == "" {
		aspect = DefaultAspectRatio
	}

	// The Gemini API rejects negativePrompt, so the avoid list rides in the
	// prompt text instead.
	resp, err := c.genai.Models.GenerateImages(ctx, c.imageModel, withAvoidList(input.Prompt, input.NegativePrompt),
		&genai.GenerateImagesConfig{
			NumberOfImages:   1,
			AspectRatio:      aspect,
			IncludeRAIReason: true,
			OutputMIMEType:   "image/png",
		})
	if err != nil {
		c.logger.WarnContext(ctx, "generate image failed", "model", c.imageModel, "error", err)
		return nil, translateError(err)
	}

	for _, generated := range resp.GeneratedImages {
		if generated == nil {
			continue
		}
		if generated.RAIFilteredReason != "" {
			c.logger.InfoContext(ctx, "generated image filtered", "reason", generated.RAIFilteredReason)
		}
		img := generated.Image
		if img == nil {
			continue
		}
		switch {
		case len(img.ImageBytes) > 0:
			mime := img.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return &GenerateImageOutput{Data: img.ImageBytes, MIMEType: mime}, nil
		case img.GCSURI != "":
			return &GenerateImageOutput{URI: img.GCSURI, MIMEType: img.MIMEType}, nil
		}
	}

	// Every image was withheld, which the backend does only for safety filtering
	return nil, safetyError("generate")
}

func withAvoidList(prompt, avoid string) string {
	avoid = strings.TrimSpace(avoid)
	if avoid == "" {
		return prompt
	}
	return strings.TrimSpace(prompt) + " Do not include: " + avoid + "."
}

func blocked(resp *genai.GenerateContentResponse) bool {
	if resp == nil {
		return false
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return true
	}
	for _, candidate := range resp.Candidates {
		if candidate != nil && candidate.FinishReason == genai.FinishReasonSafety {
			return true
		}
	}
	return false
}
