package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/api/middleware"
	"github.com/feral-file/ff-mintgate/internal/api/server"
	"github.com/feral-file/ff-mintgate/internal/config"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/engine"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/ratelimit"
	"github.com/feral-file/ff-mintgate/internal/registry"
	"github.com/feral-file/ff-mintgate/internal/state"
	"github.com/feral-file/ff-mintgate/internal/store"
	"github.com/feral-file/ff-mintgate/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting MintGate API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Load sender denylist
	var denylist engine.Denylist
	if cfg.DenylistPath != "" {
		denylistLoader := registry.NewDenylistRegistryLoader(fs, jsonAdapter)
		denylist, err = denylistLoader.Load(cfg.DenylistPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load sender denylist",
				zap.Error(err),
				zap.String("path", cfg.DenylistPath))
		}
		logger.InfoCtx(ctx, "Loaded sender denylist", zap.String("path", cfg.DenylistPath))
	} else {
		logger.WarnCtx(ctx, "Sender denylist path not configured, all senders will be accepted")
	}

	// Replay the journal into the serving engine
	eng := engine.New(state.New(), dataStore, adapter.NewJCS(), clock, denylist)
	bootStart := clock.Now()
	if err := eng.Bootstrap(ctx); err != nil {
		if errors.Is(err, domain.ErrGenesisNotFound) {
			logger.FatalCtx(ctx, "Journal has no genesis, run the deploy tool first", zap.Error(err))
		}
		logger.FatalCtx(ctx, "Failed to replay journal", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Journal replayed",
		zap.Uint64("seq", eng.Seq()),
		zap.Duration("duration", clock.Since(bootStart)),
	)

	// Metadata fetches resolve through the configured gateways
	httpClient := adapter.NewHTTPClient(30 * time.Second)
	uriConfig := &uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
	}
	metadata := uri.NewMetadataFetcher(uri.NewResolver(httpClient, uriConfig), uri.NewDataURIChecker(), httpClient, uriConfig)

	// Submission rate limiting is active only when scopes are configured
	var limiter ratelimit.Proxy
	if len(cfg.RateLimiter.Scopes) > 0 {
		redisClient := adapter.NewRedisClient(cfg.RateLimiter.RedisAddr, cfg.RateLimiter.RedisPassword, cfg.RateLimiter.RedisDB)
		limiter, err = ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to initialize rate limiter", zap.Error(err))
		}
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.WarnCtx(ctx, "Failed to close rate limiter", zap.Error(err))
			}
		}()
	} else {
		logger.WarnCtx(ctx, "No rate limit scopes configured, submission is unthrottled")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:             cfg.Debug,
		Host:              cfg.Server.Host,
		Port:              cfg.Server.Port,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeout) * time.Second,
		RequireSubmitAuth: cfg.Auth.RequireSubmitAuth,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, eng, metadata, limiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
