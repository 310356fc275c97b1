package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/opportunity-radar/internal/config"
	"github.com/jonesrussell/opportunity-radar/internal/logger"
	"github.com/jonesrussell/opportunity-radar/internal/telemetry"
)

// Server wraps the HTTP server with graceful shutdown handling.
type Server struct {
	srv             *http.Server
	logger          logger.Logger
	shutdownTimeout time.Duration
}

// NewServer builds the gin router and HTTP server for the service.
func NewServer(handler *Handler, tp *telemetry.Provider, cfg *config.Config, log logger.Logger) *Server {
	if !cfg.Service.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	SetupRoutes(router, handler, tp)

	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Service.Port),
			Handler:      router,
			ReadTimeout:  cfg.Service.ReadTimeout,
			WriteTimeout: cfg.Service.WriteTimeout,
			IdleTimeout:  cfg.Service.IdleTimeout,
		},
		logger:          log,
		shutdownTimeout: cfg.Service.ShutdownTimeout,
	}
}

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	v1 := router.Group("/api/v1")

	v1.POST("/analyze", handler.Analyze)
	v1.POST("/analyze/batch", handler.AnalyzeBatch)
	v1.POST("/suggest", handler.Suggest)
	v1.GET("/lexicons", handler.GetLexicons)
	v1.PUT("/lexicons", handler.UpdateLexicons)

	router.GET("/healthz", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}
}

// Run starts the server and blocks until a shutdown signal arrives or the
// context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server", logger.String("address", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		s.logger.Info("shutdown signal received", logger.String("signal", sig.String()))
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down HTTP server", logger.Duration("timeout", s.shutdownTimeout))
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}
