package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mintgate/internal/api/middleware"
	"github.com/feral-file/ff-mintgate/internal/api/rest"
	"github.com/feral-file/ff-mintgate/internal/api/shared/executor"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/ratelimit"
	"github.com/feral-file/ff-mintgate/internal/store"
	"github.com/feral-file/ff-mintgate/internal/uri"
)

// Config holds the server configuration
type Config struct {
	Debug             bool
	Host              string
	Port              int
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequireSubmitAuth bool
	Auth              middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	engine     executor.Engine
	metadata   uri.MetadataFetcher
	limiter    ratelimit.Proxy
	httpServer *http.Server
}

// New creates a new API server. A nil limiter disables submission rate
// limiting.
func New(cfg Config, store store.Store, engine executor.Engine, metadata uri.MetadataFetcher, limiter ratelimit.Proxy) *Server {
	return &Server{
		config:   cfg,
		store:    store,
		engine:   engine,
		metadata: metadata,
		limiter:  limiter,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create shared executor (business logic shared by every REST handler)
	exec := executor.NewExecutor(s.store, s.engine, s.metadata)

	// Create REST handler
	restHandler := rest.NewHandler(s.config.Debug, exec, s.limiter)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.config.Auth, s.config.RequireSubmitAuth)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
