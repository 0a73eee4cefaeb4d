package authsession

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-forge/internal/errors"
	redisclient "github.com/KirkDiggler/creature-forge/internal/redis"
)

const (
	sessionKeyPrefix = "session:"

	errSessionNil = "session cannot be nil"
	errTokenEmpty = "token cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed session repository. Sessions do
// not expire; they end at logout.
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.Token == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+input.Session.Token, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	return &CreateOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input.Token == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}

	result, err := r.client.Get(ctx, sessionKeyPrefix+input.Token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("session not found")
		}
		return nil, errors.Wrap(err, "failed to get session")
	}

	var out GetOutput
	if err := json.Unmarshal([]byte(result), &out.Session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	return &out, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input.Token == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}

	if err := r.client.Del(ctx, sessionKeyPrefix+input.Token).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete session")
	}

	return &DeleteOutput{}, nil
}
