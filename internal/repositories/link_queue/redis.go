package linkqueue

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-forge/internal/errors"
	redisclient "github.com/KirkDiggler/creature-forge/internal/redis"
)

const (
	// QueueKey is the Redis list holding pending jobs. Producers push on the
	// left and the worker pops on the right.
	QueueKey = "evolution:links"

	defaultPopTimeout = 5 * time.Second
)

type redisQueue struct {
	client redisclient.Client
}

// NewRedisQueue creates a Redis list backed queue
func NewRedisQueue(client redisclient.Client) Queue {
	return &redisQueue{client: client}
}

func (q *redisQueue) Push(ctx context.Context, input *PushInput) (*PushOutput, error) {
	if input.Link == nil {
		return nil, errors.InvalidArgument("link cannot be nil")
	}
	if input.Link.CreatureID == "" {
		return nil, errors.InvalidArgument("link creature ID cannot be empty")
	}

	data, err := json.Marshal(input.Link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal link")
	}

	if err := q.client.LPush(ctx, QueueKey, data).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to push link")
	}

	return &PushOutput{}, nil
}

func (q *redisQueue) Pop(ctx context.Context, input *PopInput) (*PopOutput, error) {
	timeout := input.Timeout
	if timeout <= 0 {
		timeout = defaultPopTimeout
	}

	result, err := q.client.BRPop(ctx, timeout, QueueKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &PopOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to pop link")
	}

	// BRPOP replies with [key, value]
	if len(result) != 2 {
		return nil, errors.Internalf("unexpected pop reply of %d elements", len(result))
	}

	var out PopOutput
	if err := json.Unmarshal([]byte(result[1]), &out.Link); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal link")
	}

	return &out, nil
}

func (q *redisQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, QueueKey).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get queue length")
	}
	return n, nil
}
