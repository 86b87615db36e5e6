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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"forumapi/src/app/http/handler"
	"forumapi/src/app/http/response"
	"forumapi/src/app/middleware"
	"forumapi/src/core/ports"
	"forumapi/src/core/usecase"
	"forumapi/src/infra/config"
)

// Repositories are the storage adapters the server runs on.
type Repositories struct {
	Threads  ports.ThreadRepository
	Comments ports.CommentRepository
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	healthHandler  *handler.HealthHandler
	threadHandler  *handler.ThreadHandler
	commentHandler *handler.CommentHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repos Repositories) *Server {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	healthService := usecase.NewHealthService(log, map[string]ports.Repository{
		"threads":  repos.Threads,
		"comments": repos.Comments,
	})
	threadService := usecase.NewThreadService(repos.Threads, repos.Comments, log)
	commentService := usecase.NewCommentService(repos.Threads, repos.Comments, log)

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		healthHandler:  handler.NewHealthHandler(healthService),
		threadHandler:  handler.NewThreadHandler(threadService),
		commentHandler: handler.NewCommentHandler(commentService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Recovery first so it sees panics from everything after it.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
	if s.cfg.Metrics.Enabled {
		s.router.Use(middleware.Metrics())
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	if s.cfg.Metrics.Enabled {
		s.router.GET(s.cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	auth := middleware.Auth(s.cfg.Auth.AccessTokenKey)

	threads := s.router.Group("/threads")
	{
		threads.POST("", auth, s.threadHandler.AddThread)
		threads.GET("/:threadId", s.threadHandler.GetThread)

		threads.POST("/:threadId/comments", auth, s.commentHandler.AddComment)
		threads.DELETE("/:threadId/comments/:commentId", auth, s.commentHandler.DeleteComment)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
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

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown requested", "cause", context.Cause(ctx))
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
