// Package forge saves editing sessions through the Creature Forge API so the
// editor can run against a remote server
package forge

import (
	"context"

	"google.golang.org/grpc/metadata"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
)

// BackendConfig holds the dependencies for a remote backend
type BackendConfig struct {
	Client creaturev1alpha1.CreatureServiceClient
	// Token is used when a save carries no session
	Token string
}

// Validate ensures all required dependencies are provided
func (c *BackendConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// Backend implements the editor's persistence over gRPC
type Backend struct {
	client creaturev1alpha1.CreatureServiceClient
	token  string
}

// NewBackend creates a remote backend
func NewBackend(cfg *BackendConfig) (*Backend, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Backend{client: cfg.Client, token: cfg.Token}, nil
}

// WithToken attaches a bearer token to outgoing calls. An empty token leaves
// ctx unchanged.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func (b *Backend) Autosave(ctx context.Context, input *creature.SaveInput) (*creature.AutosaveOutput, error) {
	resp, err := b.client.Autosave(b.authorize(ctx, input), b.request(input))
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}

	return &creature.AutosaveOutput{
		Status:   creature.AutosaveStatus(resp.Status),
		Creature: resp.Creature.Record(),
		Skipped:  resp.Skipped,
		Message:  resp.Message,
	}, nil
}

func (b *Backend) SaveDraft(ctx context.Context, input *creature.SaveInput) (*creature.SaveOutput, error) {
	resp, err := b.client.SaveDraft(b.authorize(ctx, input), b.request(input))
	return saveOutput(resp, err)
}

func (b *Backend) Submit(ctx context.Context, input *creature.SaveInput) (*creature.SaveOutput, error) {
	resp, err := b.client.SubmitCreature(b.authorize(ctx, input), b.request(input))
	return saveOutput(resp, err)
}

func (b *Backend) authorize(ctx context.Context, input *creature.SaveInput) context.Context {
	token := b.token
	if input != nil && input.Session != nil && input.Session.Token != "" {
		token = input.Session.Token
	}
	return WithToken(ctx, token)
}

func (b *Backend) request(input *creature.SaveInput) *creaturev1alpha1.SaveRequest {
	if input == nil {
		return &creaturev1alpha1.SaveRequest{}
	}
	return &creaturev1alpha1.SaveRequest{
		EditSessionID: input.EditSessionID,
		Creature:      creaturev1alpha1.CreatureFromEntity(input.Creature),
	}
}

func saveOutput(resp *creaturev1alpha1.SaveResponse, err error) (*creature.SaveOutput, error) {
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return &creature.SaveOutput{
		Creature: resp.Creature.Record(),
		Created:  resp.Created,
	}, nil
}
