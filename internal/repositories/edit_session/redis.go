package editsession

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-forge/internal/errors"
	redisclient "github.com/KirkDiggler/creature-forge/internal/redis"
)

const (
	sessionKeyPrefix = "edit_session:"

	// DefaultTTL is how long a session mapping survives without a save
	DefaultTTL = 24 * time.Hour

	// A claim can lose to an expiring key between SETNX and GET
	maxClaimAttempts = 3

	errSessionIDEmpty = "session ID cannot be empty"
	errRecordIDEmpty  = "record ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed session repository. A zero ttl
// uses DefaultTTL.
func NewRedisRepository(client redisclient.Client, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisRepository) Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.RecordID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := sessionKeyPrefix + input.SessionID

	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
		claimed, err := r.client.SetNX(ctx, key, input.RecordID, r.ttl).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to claim session %s", input.SessionID)
		}
		if claimed {
			return &ClaimOutput{RecordID: input.RecordID, Claimed: true}, nil
		}

		recordID, err := r.client.GetEx(ctx, key, r.ttl).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve session %s", input.SessionID)
		}

		return &ClaimOutput{RecordID: recordID}, nil
	}

	return nil, errors.Unavailablef("could not claim session %s", input.SessionID)
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	recordID, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session %s has no record", input.SessionID)
		}
		return nil, errors.Wrapf(err, "failed to resolve session %s", input.SessionID)
	}

	return &GetOutput{RecordID: recordID}, nil
}

func (r *redisRepository) Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	if err := r.client.Del(ctx, sessionKeyPrefix+input.SessionID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to release session %s", input.SessionID)
	}

	return &ReleaseOutput{}, nil
}
