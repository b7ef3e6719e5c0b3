package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/pkg/events"
	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/services"
)

// handleListDrafts returns a session's drafts, newest first, optionally
// filtered by status.
func (s *Server) handleListDrafts(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	status := emaildraft.Status(c.Query("status"))
	if status != "" {
		if err := emaildraft.StatusValidator(status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + string(status)})
			return
		}
	}

	drafts, err := s.drafts.ListDrafts(c.Request.Context(), sessionID, status)
	if err != nil {
		httpStatus, body := mapServiceError(err)
		c.JSON(httpStatus, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": draftSummaries(drafts)})
}

// handlePendingDrafts returns drafts awaiting approval across all
// sessions, soonest to expire first.
func (s *Server) handlePendingDrafts(c *gin.Context) {
	drafts, err := s.drafts.ListPendingApprovals(c.Request.Context())
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": draftSummaries(drafts)})
}

type draftDecisionRequest struct {
	Approved      bool               `json:"approved"`
	Feedback      string             `json:"feedback"`
	Modifications models.DraftUpdate `json:"modifications"`
}

// handleDraftDecision records a human verdict on a pending draft.
//
// Flow:
//  1. Parse the decision body
//  2. Apply approve or reject through the status-guarded transition
//  3. Publish the draft status event and fire the outcome notification,
//     both fail-open
func (s *Server) handleDraftDecision(c *gin.Context) {
	draftID := c.Param("id")

	var req draftDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	var (
		draft *ent.EmailDraft
		err   error
	)
	if req.Approved {
		draft, err = s.drafts.Approve(c.Request.Context(), models.ApprovalDecision{
			DraftID:       draftID,
			Approved:      true,
			Feedback:      req.Feedback,
			Modifications: req.Modifications,
		})
	} else {
		draft, err = s.drafts.Reject(c.Request.Context(), draftID, req.Feedback)
	}
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	summary := services.ToDraftSummary(draft)
	if s.publisher != nil {
		if err := s.publisher.PublishDraftStatus(c.Request.Context(), events.DraftStatusPayload{
			SessionID: draft.SessionID,
			DraftID:   draft.ID,
			Status:    string(draft.Status),
		}); err != nil {
			s.logger.Warn("Failed to publish draft status",
				"draft_id", draft.ID, "error", err)
		}
	}
	if !req.Approved {
		s.notifier.NotifyDraftOutcome(c.Request.Context(), summary, req.Feedback)
	}

	c.JSON(http.StatusOK, gin.H{"draft": summary})
}

func draftSummaries(drafts []*ent.EmailDraft) []*models.DraftSummary {
	out := make([]*models.DraftSummary, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, services.ToDraftSummary(d))
	}
	return out
}
