package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/KirkDiggler/creature-forge/internal/clients/artgen"
	"github.com/KirkDiggler/creature-forge/internal/config"
	"github.com/KirkDiggler/creature-forge/internal/database"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/artwork"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/auth"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/evolution"
	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/creature-forge/internal/redis"
	authsession "github.com/KirkDiggler/creature-forge/internal/repositories/auth_session"
	creaturerepo "github.com/KirkDiggler/creature-forge/internal/repositories/creature"
	editsession "github.com/KirkDiggler/creature-forge/internal/repositories/edit_session"
	linkqueue "github.com/KirkDiggler/creature-forge/internal/repositories/link_queue"
	userrepo "github.com/KirkDiggler/creature-forge/internal/repositories/user"
	"github.com/KirkDiggler/creature-forge/internal/storage"
)

// app holds everything the server and maintenance commands share
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	db    *gorm.DB
	redis redisclient.Client

	creatureRepo creaturerepo.Repository
	linkQueue    linkqueue.Queue

	creatureService  creature.Service
	evolutionService evolution.Service
	artworkService   artwork.Service
	authService      auth.Service
}

// loadConfig reads the config file and environment, then applies the flags
// the user actually set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	override := func(name string, target *string) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return
		}
		if v, err := flags.GetString(name); err == nil {
			*target = v
		}
	}
	override("grpc-addr", &cfg.Server.GRPCAddr)
	override("media-addr", &cfg.Server.MediaAddr)
	override("log-level", &cfg.Log.Level)
	override("database", &cfg.Database.DSN)
	override("redis-url", &cfg.Redis.URL)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newApp opens the stores and builds the services. Close releases them.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	db, err := database.Open(&database.Config{
		DSN:        cfg.Database.DSN,
		SlowQuery:  cfg.Database.SlowQuery,
		LogQueries: cfg.Database.LogQueries,
		Logger:     logger,
	}, creaturerepo.Migrate, userrepo.Migrate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	a.db = db

	rc, err := redisclient.Connect(ctx, &redisclient.Config{
		URL:      cfg.Redis.URL,
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	a.redis = rc

	a.creatureRepo, err = creaturerepo.NewGormRepository(&creaturerepo.GormConfig{DB: db})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.linkQueue = linkqueue.NewRedisQueue(rc)

	realClock := clock.New()

	a.creatureService, err = creature.NewOrchestrator(&creature.Config{
		CreatureRepo:    a.creatureRepo,
		EditSessionRepo: editsession.NewRedisRepository(rc, cfg.Editing.SessionTTL),
		LinkQueue:       a.linkQueue,
		IDGenerator:     idgen.NewUUID("creature"),
		Clock:           realClock,
		Logger:          logger.With("component", "creature"),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create creature service")
	}

	a.evolutionService, err = evolution.NewOrchestrator(&evolution.Config{
		CreatureRepo: a.creatureRepo,
		IDGenerator:  idgen.NewUUID("creature"),
		Clock:        realClock,
		Logger:       logger.With("component", "evolution"),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create evolution service")
	}

	a.authService, err = auth.NewOrchestrator(&auth.Config{
		UserRepo:        userrepo.NewGormRepository(db),
		SessionRepo:     authsession.NewRedisRepository(rc),
		UserIDGenerator: idgen.NewUUID("user"),
		TokenGenerator:  idgen.NewToken(),
		BcryptCost:      cfg.Auth.BcryptCost,
		Clock:           realClock,
		Logger:          logger.With("component", "auth"),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create auth service")
	}

	a.artworkService, err = a.newArtworkService(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *app) newArtworkService(ctx context.Context) (artwork.Service, error) {
	store, err := storage.NewFilesystemStore(&storage.FilesystemConfig{
		Root:          a.cfg.Storage.Root,
		PublicBaseURL: a.cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create media store")
	}

	var artClient artgen.Client
	if a.cfg.Artgen.APIKey == "" {
		a.logger.Warn("no image model API key configured, the art studio is offline")
	} else {
		artClient, err = artgen.New(ctx, &artgen.Config{
			APIKey:      a.cfg.Artgen.APIKey,
			VisionModel: a.cfg.Artgen.VisionModel,
			ImageModel:  a.cfg.Artgen.ImageModel,
			BaseURL:     a.cfg.Artgen.BaseURL,
			Timeout:     a.cfg.Artgen.Timeout,
			Logger:      a.logger.With("component", "artgen"),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create image model client")
		}
	}

	svc, err := artwork.NewOrchestrator(&artwork.Config{
		Store:           store,
		ArtClient:       artClient,
		CreatureService: a.creatureService,
		IDGenerator:     idgen.NewUUID(""),
		Logger:          a.logger.With("component", "artwork"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create artwork service")
	}
	return svc, nil
}

// Close releases the database and Redis connections
func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis client", "error", err)
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.logger.Warn("failed to close database", "error", err)
		}
	}
}
