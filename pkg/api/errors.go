package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sundialhq/maestro/pkg/services"
)

// mapServiceError translates a service-layer error into an HTTP status and
// response body. Unexpected errors are logged here and reported without
// internal detail.
func mapServiceError(err error) (int, gin.H) {
	switch {
	case services.IsValidationError(err):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": err.Error()}
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, gin.H{"error": err.Error()}
	case errors.Is(err, services.ErrTerminalState):
		return http.StatusConflict, gin.H{"error": err.Error()}
	case errors.Is(err, services.ErrIllegalTransition):
		return http.StatusConflict, gin.H{"error": err.Error()}
	default:
		slog.Error("Unhandled service error", "error", err)
		return http.StatusInternalServerError, gin.H{"error": "internal server error"}
	}
}
