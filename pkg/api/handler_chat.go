package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sundialhq/maestro/pkg/models"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

// handleChat processes one chat message and returns the compiled response.
//
// Flow:
//  1. Parse and validate the request body
//  2. Run the orchestrator end to end
//  3. Map service errors to HTTP statuses
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := s.orchestrator.Orchestrate(c.Request.Context(), models.OrchestrateRequest{
		Message:         req.Message,
		SessionID:       req.SessionID,
		UserID:          req.UserID,
		ThirdPartyToken: c.GetHeader(googleTokenHeader),
	})
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleChatStream is handleChat over Server-Sent Events: response text
// arrives as "chunk" events while it is produced, then a final "done" event
// carries the same response object the blocking endpoint returns.
func (s *Server) handleChatStream(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Message == "" || req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message and session_id are required"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	// onDelta runs on the request goroutine; writes need no locking.
	onDelta := func(delta string) {
		writeSSE(c, flusher, "chunk", gin.H{"delta": delta})
	}

	resp, err := s.orchestrator.OrchestrateStream(c.Request.Context(), models.OrchestrateRequest{
		Message:         req.Message,
		SessionID:       req.SessionID,
		UserID:          req.UserID,
		ThirdPartyToken: c.GetHeader(googleTokenHeader),
	}, onDelta)
	if err != nil {
		writeSSE(c, flusher, "error", gin.H{"error": err.Error()})
		return
	}
	writeSSE(c, flusher, "done", resp)
}

// handleCancelRequest aborts a running orchestration by request id.
func (s *Server) handleCancelRequest(c *gin.Context) {
	requestID := c.Param("id")
	if !s.orchestrator.Cancel(requestID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no running request with that id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true, "request_id": requestID})
}

// writeSSE writes one Server-Sent Event and flushes. Marshal failures are
// logged and the event dropped; the stream itself stays usable.
func writeSSE(c *gin.Context, flusher http.Flusher, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, data)
	flusher.Flush()
}
