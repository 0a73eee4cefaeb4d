package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	grpcauth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/handlers/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/evolution"
	"github.com/KirkDiggler/creature-forge/internal/storage"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the Creature Forge gRPC server together with the media server that
serves stored drawings and artwork, and the worker that links evolutions.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().String("grpc-addr", "", "gRPC listen address (overrides config)")
	serverCmd.Flags().String("media-addr", "", "media server listen address, empty in config disables it")
	serverCmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	serverCmd.Flags().String("database", "", "SQLite database path")
	serverCmd.Flags().String("redis-url", "", "Redis URL, e.g. redis://localhost:6379/0")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CreatureService: a.creatureService,
		ArtworkService:  a.artworkService,
		AuthService:     a.authService,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create creature handler")
	}

	worker, err := evolution.NewWorker(&evolution.WorkerConfig{
		Service:    a.evolutionService,
		Queue:      a.linkQueue,
		PopTimeout: cfg.Editing.LinkPopTimeout,
		Logger:     logger.With("component", "evolution_worker"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create evolution worker")
	}

	srv := newGRPCServer(logger, a)
	creaturev1alpha1.RegisterCreatureServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(creaturev1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	media, err := newMediaServer(cfg.Server.MediaAddr, cfg.Storage.Root, cfg.Storage.PublicBaseURL)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", cfg.Server.GRPCAddr)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server starting", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			return errors.Wrap(err, "gRPC server failed")
		}
		return nil
	})

	g.Go(func() error {
		return worker.Run(gctx)
	})

	if media != nil {
		g.Go(func() error {
			logger.Info("media server starting", "addr", media.Addr)
			if err := media.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return errors.Wrap(err, "media server failed")
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		healthServer.Shutdown()
		shutdown(logger, srv, media, cfg.Server.ShutdownTimeout)
		return nil
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func newGRPCServer(logger *slog.Logger, a *app) *grpc.Server {
	grpcLogger := interceptorLogger(logger.With("component", "grpc"))
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic", "panic", p)
		return status.Error(codes.Internal, errors.UserMessage(errors.Internal("panic")))
	})
	authInterceptor := selector.UnaryServerInterceptor(
		grpcauth.UnaryServerInterceptor(v1alpha1.AuthFunc(a.authService)),
		selector.MatchFunc(v1alpha1.NeedsAuth),
	)

	return grpc.NewServer(
		grpc.MaxRecvMsgSize(creaturev1alpha1.MaxMessageBytes),
		grpc.MaxSendMsgSize(creaturev1alpha1.MaxMessageBytes),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger,
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
			authInterceptor,
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger,
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
}

// newMediaServer serves stored images read-only. An empty addr disables it.
func newMediaServer(addr, root, publicBaseURL string) (*http.Server, error) {
	if addr == "" {
		return nil, nil
	}

	handler, err := storage.MediaHandler(&storage.FilesystemConfig{
		Root:          root,
		PublicBaseURL: publicBaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create media handler")
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func shutdown(logger *slog.Logger, srv *grpc.Server, media *http.Server, timeout time.Duration) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if media != nil {
		if err := media.Shutdown(shutdownCtx); err != nil {
			logger.Warn("media server shutdown failed", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
