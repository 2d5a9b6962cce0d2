package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/services"
)

// respondServiceError maps service- and gateway-layer errors to HTTP
// responses. Structured failures carry a FailureRecord so callers can act
// on the kind without parsing message text.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyResolved) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: "escalation already resolved",
			Failure: &models.FailureRecord{
				Kind:    services.FailureKind(err),
				Message: "escalation has already been resolved",
			},
		})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "resource already exists"})
		return
	}
	if errors.Is(err, services.ErrStorageUnavailable) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "storage unavailable",
			Failure: &models.FailureRecord{
				Kind:        services.FailureKind(err),
				Message:     "storage unavailable",
				Remediation: "retry the request",
			},
		})
		return
	}
	if errors.Is(err, llm.ErrUnavailable) || llm.IsRateLimited(err) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "language model gateway unavailable",
			Failure: &models.FailureRecord{
				Kind:        "transient",
				Message:     err.Error(),
				Remediation: "retry the request after a short delay",
			},
		})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
