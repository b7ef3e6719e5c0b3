// Package api provides the HTTP surface: chat (blocking and streaming),
// file upload, draft approval endpoints, session history, and health.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sundialhq/maestro/pkg/database"
	"github.com/sundialhq/maestro/pkg/events"
	"github.com/sundialhq/maestro/pkg/notify"
	"github.com/sundialhq/maestro/pkg/orchestrator"
	"github.com/sundialhq/maestro/pkg/services"
)

// googleTokenHeader carries the caller's Google OAuth access token. It is
// never persisted; it lives on the scratchpad for the request's lifetime.
const googleTokenHeader = "X-Google-Token"

// Server is the HTTP API server.
type Server struct {
	orchestrator *orchestrator.Orchestrator
	messages     *services.MessageService
	drafts       *services.DraftService
	files        *services.FileService
	broker       *events.Broker
	publisher    *events.Publisher
	notifier     *notify.Service
	db           *database.Client
	logger       *slog.Logger

	httpServer *http.Server
}

// Config holds the server dependencies. Broker, publisher and notifier may
// be nil; the corresponding features degrade gracefully.
type Config struct {
	ListenAddr   string
	Orchestrator *orchestrator.Orchestrator
	Messages     *services.MessageService
	Drafts       *services.DraftService
	Files        *services.FileService
	Broker       *events.Broker
	Publisher    *events.Publisher
	Notifier     *notify.Service
	DB           *database.Client
	Logger       *slog.Logger
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg Config) *Server {
	s := &Server{
		orchestrator: cfg.Orchestrator,
		messages:     cfg.Messages,
		drafts:       cfg.Drafts,
		files:        cfg.Files,
		broker:       cfg.Broker,
		publisher:    cfg.Publisher,
		notifier:     cfg.Notifier,
		db:           cfg.DB,
		logger:       cfg.Logger.With("component", "api"),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeaders())
	s.registerRoutes(router)

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/chat", s.handleChat)
		api.POST("/chat/stream", s.handleChatStream)
		api.POST("/files/upload", s.handleFileUpload)
		api.POST("/requests/:id/cancel", s.handleCancelRequest)

		api.GET("/sessions/:id/history", s.handleSessionHistory)
		api.GET("/sessions/:id/events", s.handleSessionEvents)

		api.GET("/drafts", s.handleListDrafts)
		api.GET("/drafts/pending", s.handlePendingDrafts)
		api.POST("/drafts/:id/decision", s.handleDraftDecision)
	}
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.logger.Info("API server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	status, err := database.Health(c.Request.Context(), s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, status)
}
