// Package server exposes the board and analytics engines over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/sprintboard/internal/app"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// Server provides HTTP handlers for the sprint board.
type Server struct {
	engine    *gin.Engine
	app       *app.App
	logger    *slog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured.
func New(application *app.App, staticDir string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api/healthz"))

	srv := &Server{
		engine:    router,
		app:       application,
		logger:    application.Logger(),
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		epics := api.Group("/epics")
		{
			epics.GET("", s.handleListEpics)
			epics.POST("", s.handleCreateEpic)
			epics.DELETE(":id", s.handleDeleteEpic)
		}

		sprints := api.Group("/sprints")
		{
			sprints.GET("", s.handleListSprints)
			sprints.POST("", s.handleCreateSprint)
			sprints.GET(":id", s.handleGetSprint)
			sprints.PUT(":id/status", s.handleSprintStatus)
			sprints.DELETE(":id", s.handleDeleteSprint)
			sprints.GET(":id/burndown", s.handleBurndown)
		}

		tickets := api.Group("/tickets")
		{
			tickets.GET("", s.handleListTickets)
			tickets.POST("", s.handleCreateTicket)
			tickets.GET(":id", s.handleGetTicket)
			tickets.PUT(":id/status", s.handleTicketStatus)
			tickets.DELETE(":id", s.handleDeleteTicket)
		}

		api.GET("/board", s.handleBoard)

		analytics := api.Group("/analytics")
		{
			analytics.GET("/overview", s.handleOverview)
			analytics.GET("/velocity", s.handleVelocity)
		}
	}

	s.mountStatic()
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", slog.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("failed to shutdown server", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID converts a path parameter to a positive int.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return id, true
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs server-side failures and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondBadRequest reports a malformed body.
func (s *Server) respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondSuccess writes payload, or only the status when payload is nil.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
