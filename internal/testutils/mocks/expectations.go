// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	creaturerepo "github.com/KirkDiggler/creature-forge/internal/repositories/creature"
	creaturerepomock "github.com/KirkDiggler/creature-forge/internal/repositories/creature/mock"
	editsession "github.com/KirkDiggler/creature-forge/internal/repositories/edit_session"
	editsessionmock "github.com/KirkDiggler/creature-forge/internal/repositories/edit_session/mock"
)

// ExpectFreshClaim expects the edit session to be claimed for the first time
// with recordID.
func ExpectFreshClaim(ctx context.Context, sessions *editsessionmock.MockRepository, recordID string) {
	sessions.EXPECT().
		Claim(ctx, gomock.Any()).
		Return(&editsession.ClaimOutput{RecordID: recordID, Claimed: true}, nil)
}

// ExpectNewRecord expects a lookup for a record that does not exist yet
func ExpectNewRecord(ctx context.Context, creatures *creaturerepomock.MockRepository) {
	creatures.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.NotFound("creature not found"))
}

// ExpectUpsertCreated expects one upsert and echoes the written creature back
// as newly created. check, when set, inspects the creature before it returns.
func ExpectUpsertCreated(
	ctx context.Context,
	creatures *creaturerepomock.MockRepository,
	check func(c *entities.Creature),
) {
	creatures.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *creaturerepo.UpsertInput) (*creaturerepo.UpsertOutput, error) {
			if check != nil {
				check(input.Creature)
			}
			return &creaturerepo.UpsertOutput{Creature: input.Creature, Created: true}, nil
		})
}
