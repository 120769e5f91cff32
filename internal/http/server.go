// Package http provides the gin API server, the metrics server and their middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cipherHTTP "github.com/allisson/passcrypt/internal/cipher/http"
	"github.com/allisson/passcrypt/internal/config"
	digestHTTP "github.com/allisson/passcrypt/internal/digest/http"
	apperrors "github.com/allisson/passcrypt/internal/errors"
	"github.com/allisson/passcrypt/internal/httputil"
	"github.com/allisson/passcrypt/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	ready  atomic.Bool

	// background goroutines started by middleware stop when bgCancel is called
	bgCtx    context.Context
	bgCancel context.CancelFunc
}

// NewServer creates a new API server. Call SetupRouter before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	bgCtx, bgCancel := context.WithCancel(context.Background())

	return &Server{
		logger:   logger,
		bgCtx:    bgCtx,
		bgCancel: bgCancel,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes.
//
// metricsProvider may be nil, in which case no HTTP metrics are recorded.
func (s *Server) SetupRouter(
	cfg *config.Config,
	cipherHandler *cipherHTTP.CipherHandler,
	digestHandler *digestHTTP.DigestHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(s.bgCtx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	cipherGroup := v1.Group("/cipher")
	{
		cipherGroup.POST("/encrypt", cipherHandler.EncryptHandler)
		cipherGroup.POST("/decrypt", cipherHandler.DecryptHandler)
	}

	v1.POST("/digest", digestHandler.HashHandler)

	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, s.logger)
	})

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves until Shutdown is called.
// The server reports ready once the listener is bound.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.ready.Store(true)
	s.logger.Info("starting http server", slog.String("addr", listener.Addr().String()))

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.ready.Store(false)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server not ready, stops middleware goroutines and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.ready.Store(false)
	s.bgCancel()
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server is accepting traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
