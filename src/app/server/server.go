// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"storefront/src/app/http/handler"
	"storefront/src/app/middleware"
	"storefront/src/core/codegen"
	"storefront/src/core/domain"
	"storefront/src/core/format"
	"storefront/src/core/usecase"
	"storefront/src/infra/config"
	"storefront/src/infra/logger"
	"storefront/src/infra/repo"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler *handler.HealthHandler
	userHandler   *handler.UserHandler
	orderHandler  *handler.OrderHandler
}

// New creates a Server with all dependencies wired up. Dependency
// construction is explicit here: shared primitives first, then the two
// resource services over their stores, then handlers.
func New(cfg *config.Config, log *slog.Logger, userStore *repo.MemoryStore[domain.User], orderStore *repo.MemoryStore[domain.Order]) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Shared primitives
	generator := codegen.New()
	formatter := format.New(cfg.Service.CurrencySymbol)

	// Create services
	userService := usecase.NewUserService(userStore, generator, formatter, log)
	orderService := usecase.NewOrderService(orderStore, generator, formatter, cfg.Service.OrderNumberPrefix, cfg.Service.OrderCodeLength, log)
	healthService := usecase.NewHealthService(log, map[string]usecase.RecordCounter{
		"users":  userStore,
		"orders": orderStore,
	})

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		healthHandler: handler.NewHealthHandler(healthService),
		userHandler:   handler.NewUserHandler(userService, log),
		orderHandler:  handler.NewOrderHandler(orderService, log),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	httpLog := logger.WithComponent(s.log, "http")

	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(httpLog))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(httpLog))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	api := s.router.Group("/api")
	{
		// Users
		api.POST("/users", s.userHandler.Create)
		api.GET("/users", s.userHandler.List)
		api.GET("/users/:id", s.userHandler.Get)

		// Orders
		api.POST("/orders", s.orderHandler.Create)
		api.GET("/orders", s.orderHandler.List)
		api.GET("/orders/:id", s.orderHandler.Get)
	}
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
