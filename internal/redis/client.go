// Package redis builds the Redis client behind edit-session claims, login
// sessions and the evolution link queue.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-forge/internal/errors"
)

const defaultDialTimeout = 5 * time.Second

// Config names one Redis instance. URL wins over Addr when both are set.
type Config struct {
	URL         string
	Addr        string
	DB          int
	Password    string
	PoolSize    int
	DialTimeout time.Duration
}

// Validate ensures the config names a server
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.URL == "" && c.Addr == "" {
		vb.Field("Addr", "either a url or an address is required")
	}
	if c.DB < 0 {
		vb.Field("DB", "must not be negative")
	}
	if c.PoolSize < 0 {
		vb.Field("PoolSize", "must not be negative")
	}

	return vb.Build()
}

// Connect creates a client and checks that the server answers
func Connect(ctx context.Context, cfg *Config) (Client, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Unavailablef("redis is not reachable: %v", err)
	}
	return client, nil
}

// NewClient creates a client without contacting the server
func NewClient(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis config")
	}

	opts, err := options(cfg)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func options(cfg *Config) (*redis.Options, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid redis url: %v", err).
				WithMeta("field", "url")
		}
		opts = parsed
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.DialTimeout = cfg.DialTimeout
	if opts.DialTimeout == 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	return opts, nil
}
