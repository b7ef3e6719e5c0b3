package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sundialhq/maestro/pkg/models"
)

// maxUploadBytes bounds the multipart body. Matches the file pipeline's
// per-file cap plus form overhead.
const maxUploadBytes = 50<<20 + 1<<20

// handleFileUpload accepts a multipart upload, persists the file to the
// session, and routes it through the orchestrator with the blob on the
// scratchpad so the file agent can process it in the same turn.
//
// Form fields: file (required), session_id (required), message (optional),
// user_id (optional).
func (s *Server) handleFileUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required: " + err.Error()})
		return
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload: " + err.Error()})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "failed to read upload: " + err.Error()})
		return
	}

	// Persist first so a later "summarize that file" turn can find it.
	if _, err := s.files.SaveFile(c.Request.Context(), sessionID, header.Filename, content); err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	message := c.PostForm("message")
	if message == "" {
		message = "Please summarize the uploaded file."
	}

	resp, err := s.orchestrator.Orchestrate(c.Request.Context(), models.OrchestrateRequest{
		Message:         message,
		SessionID:       sessionID,
		UserID:          c.PostForm("user_id"),
		ThirdPartyToken: c.GetHeader(googleTokenHeader),
		FileBlob:        content,
		FileName:        header.Filename,
	})
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, resp)
}
