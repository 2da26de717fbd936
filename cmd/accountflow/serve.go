package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/core/services"
	"github.com/SscSPs/accountflow_ledger/internal/handlers"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
	"github.com/SscSPs/accountflow_ledger/internal/platform/config"
	"github.com/SscSPs/accountflow_ledger/internal/repositories/database/memory"
	"github.com/SscSPs/accountflow_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/accountflow_ledger/internal/repositories/lock"
	"github.com/SscSPs/accountflow_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand(logger *slog.Logger, getConfig func() *config.Config) *cobra.Command {
	var migrateOnStart bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, getConfig(), logger, migrateOnStart)
		},
	}
	cmd.Flags().BoolVar(&migrateOnStart, "migrate", true, "apply pending migrations before serving (postgres backend only)")

	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrateOnStart bool) error {
	repos, cleanup, err := buildRepositories(ctx, cfg, logger, migrateOnStart)
	if err != nil {
		return err
	}
	defer cleanup()

	locker, closeLocker, err := buildLocker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLocker()

	serviceContainer := services.NewServiceContainer(cfg, repos, locker)

	r, err := buildRouter(cfg, logger, serviceContainer)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildRepositories selects the storage adapter. The returned func releases it.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrateOnStart bool) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	if migrateOnStart {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// buildLocker uses redis when an address is configured, otherwise an in-process locker
// that only serialises writers of this instance.
func buildLocker(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.Locker, func(), error) {
	if cfg.RedisAddress == "" {
		logger.Info("REDIS_ADDRESS not set, using in-process locks")
		return lock.NewLocalLocker(cfg.LockWait), func() {}, nil
	}

	rdb, err := lock.NewRedisClient(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
		return nil, nil, err
	}
	logger.Info("Using redis locks", slog.String("address", cfg.RedisAddress))
	return lock.NewRedisLocker(rdb, cfg.LockTTL, cfg.LockWait), func() { _ = rdb.Close() }, nil
}

func buildRouter(cfg *config.Config, logger *slog.Logger, serviceContainer *portssvc.ServiceContainer) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	r.Use(cors.New(corsConfig))

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	r.Use(middleware.RateLimit(limiterInstance))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)
	return r, nil
}
