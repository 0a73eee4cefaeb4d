// Package config loads server settings from a YAML file, the environment and
// command line flags, in that order of precedence from lowest to highest.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/creature-forge/internal/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CREATURE_FORGE_"

// Config is the full server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Storage  StorageConfig  `yaml:"storage"`
	Artgen   ArtgenConfig   `yaml:"artgen"`
	Editing  EditingConfig  `yaml:"editing"`
	Auth     AuthConfig     `yaml:"auth"`
}

// ServerConfig controls the listeners
type ServerConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
	// MediaAddr serves stored images; empty disables the media server
	MediaAddr       string        `yaml:"media_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig controls structured logging
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DatabaseConfig struct {
	DSN        string        `yaml:"dsn"`
	SlowQuery  time.Duration `yaml:"slow_query"`
	LogQueries bool          `yaml:"log_queries"`
}

// RedisConfig names the Redis instance. URL wins over Addr when both are set.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Addr     string `yaml:"addr"`
	DB       int    `yaml:"db"`
	Password string `yaml:"password"`
	PoolSize int    `yaml:"pool_size"`
}

type StorageConfig struct {
	Root          string `yaml:"root"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// ArtgenConfig configures the vision and image models. An empty APIKey runs
// the server with the art studio offline.
type ArtgenConfig struct {
	APIKey      string        `yaml:"api_key"`
	VisionModel string        `yaml:"vision_model"`
	ImageModel  string        `yaml:"image_model"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
}

// EditingConfig tunes editing sessions and evolution linking
type EditingConfig struct {
	SessionTTL     time.Duration `yaml:"session_ttl"`
	LinkPopTimeout time.Duration `yaml:"link_pop_timeout"`
}

type AuthConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// Default returns a configuration that runs everything on localhost
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCAddr:        ":50051",
			MediaAddr:       ":8081",
			ShutdownTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Database: DatabaseConfig{
			DSN:       "data/creature-forge.db",
			SlowQuery: 200 * time.Millisecond,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			PoolSize: 10,
		},
		Storage: StorageConfig{
			Root:          "data/media",
			PublicBaseURL: "http://localhost:8081/media",
		},
		Artgen: ArtgenConfig{
			Timeout: 60 * time.Second,
		},
		Editing: EditingConfig{
			SessionTTL:     24 * time.Hour,
			LinkPopTimeout: 5 * time.Second,
		},
		Auth: AuthConfig{
			BcryptCost: bcrypt.DefaultCost,
		},
	}
}

// Load reads the defaults, then the YAML file at path (skipped when empty),
// then the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := cfg.Decode(bytes.NewReader(data)); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode merges YAML from r over the current values. Unknown keys are errors.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.InvalidArgumentf("invalid config: %v", err)
	}
	return nil
}

type envBinding struct {
	name  string
	apply func(c *Config, value string) error
}

var envBindings = []envBinding{
	{EnvPrefix + "GRPC_ADDR", setString(func(c *Config) *string { return &c.Server.GRPCAddr })},
	{EnvPrefix + "MEDIA_ADDR", setString(func(c *Config) *string { return &c.Server.MediaAddr })},
	{EnvPrefix + "LOG_LEVEL", setString(func(c *Config) *string { return &c.Log.Level })},
	{EnvPrefix + "LOG_FORMAT", setString(func(c *Config) *string { return &c.Log.Format })},
	{EnvPrefix + "DATABASE_DSN", setString(func(c *Config) *string { return &c.Database.DSN })},
	{EnvPrefix + "REDIS_URL", setString(func(c *Config) *string { return &c.Redis.URL })},
	{EnvPrefix + "REDIS_ADDR", setString(func(c *Config) *string { return &c.Redis.Addr })},
	{EnvPrefix + "REDIS_PASSWORD", setString(func(c *Config) *string { return &c.Redis.Password })},
	{EnvPrefix + "STORAGE_ROOT", setString(func(c *Config) *string { return &c.Storage.Root })},
	{EnvPrefix + "PUBLIC_BASE_URL", setString(func(c *Config) *string { return &c.Storage.PublicBaseURL })},
	{EnvPrefix + "SESSION_TTL", setDuration(func(c *Config) *time.Duration { return &c.Editing.SessionTTL })},
	{EnvPrefix + "BCRYPT_COST", setInt(func(c *Config) *int { return &c.Auth.BcryptCost })},
	{"GEMINI_API_KEY", setString(func(c *Config) *string { return &c.Artgen.APIKey })},
}

// ApplyEnv overrides values from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		value, ok := lookup(b.name)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if err := b.apply(c, strings.TrimSpace(value)); err != nil {
			return errors.Wrapf(err, "invalid %s", b.name)
		}
	}
	return nil
}

func setString(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, value string) error {
		*field(c) = value
		return nil
	}
}

func setInt(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.InvalidArgumentf("%q is not a number", value)
		}
		*field(c) = n
		return nil
	}
}

func setDuration(field func(*Config) *time.Duration) func(*Config, string) error {
	return func(c *Config, value string) error {
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.InvalidArgumentf("%q is not a duration", value)
		}
		*field(c) = d
		return nil
	}
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("server.grpc_addr", c.Server.GRPCAddr, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)

	errors.ValidateRequired("database.dsn", c.Database.DSN, vb)

	if c.Redis.URL == "" && c.Redis.Addr == "" {
		vb.Field("redis", "url or addr is required")
	}

	errors.ValidateRequired("storage.root", c.Storage.Root, vb)
	errors.ValidateRequired("storage.public_base_url", c.Storage.PublicBaseURL, vb)
	if c.Storage.PublicBaseURL != "" {
		errors.ValidateOptionalURL("storage.public_base_url", &c.Storage.PublicBaseURL, vb)
	}

	if c.Editing.SessionTTL <= 0 {
		vb.Field("editing.session_ttl", "must be positive")
	}
	if c.Editing.LinkPopTimeout <= 0 {
		vb.Field("editing.link_pop_timeout", "must be positive")
	}

	errors.ValidateRange("auth.bcrypt_cost", c.Auth.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost, vb)

	return vb.Build()
}

// ParseLevel converts a level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", level)
	}
	return l, nil
}
