package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sundialhq/maestro/pkg/events"
	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/services"
)

// handleSessionHistory returns the session's full transcript, oldest first.
func (s *Server) handleSessionHistory(c *gin.Context) {
	sessionID := c.Param("id")

	messages, err := s.messages.GetTranscript(c.Request.Context(), sessionID)
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	views := make([]models.ChatMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, services.ToMessageView(m))
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"messages":   views,
	})
}

// handleSessionEvents streams the session's live events over SSE. Each
// event's payload is forwarded as-is; the payload's own "type" field tells
// the client what it is looking at.
func (s *Server) handleSessionEvents(c *gin.Context) {
	sessionID := c.Param("id")
	if s.broker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming is not enabled"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	ctx := c.Request.Context()
	ch, cancel, err := s.broker.Subscribe(ctx, events.SessionChannel(sessionID))
	if err != nil {
		s.logger.Error("Event subscription failed", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe to session events"})
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, open := <-ch:
			if !open {
				return
			}
			c.Writer.WriteString("data: ")
			c.Writer.Write(payload)
			c.Writer.WriteString("\n\n")
			flusher.Flush()
		}
	}
}
