package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is what the repositories depend on. In tests it is backed by
// miniredis.
type Client interface {
	redis.UniversalClient
}

// Nil is returned when a key does not exist or a blocking pop times out
const Nil = redis.Nil
