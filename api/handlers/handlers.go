// Package handlers wires the HTTP endpoints to the service layer. Every
// handler is a constructor returning a gin.HandlerFunc, so the router can
// compose them with explicit dependencies.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/ai/conversation"
	"fleur-api/ai/recommend"
	"fleur-api/dto"
	"fleur-api/logger"
	"fleur-api/services"
	"fleur-api/trace"
)

// respondServiceError maps service sentinels to HTTP statuses with the
// shared snake_case error codes. Unknown errors log and return 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "email_already_registered"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_credentials"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "user_not_found"})
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "product_not_found"})
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "order_not_found"})
	case errors.Is(err, services.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "already_reviewed"})
	case errors.Is(err, services.ErrPaymentsDisabled):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "payments_unavailable"})
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "payment_session_not_found"})
	case errors.Is(err, services.ErrBadSignature):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_payment_signature"})
	case errors.Is(err, services.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "cart_empty"})
	case errors.Is(err, services.ErrNoImage):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "image_required"})
	case errors.Is(err, services.ErrAIUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "ai_unavailable"})
	case errors.Is(err, recommend.ErrIncompleteQuiz):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "incomplete_quiz"})
	case errors.Is(err, conversation.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "empty_message"})
	default:
		logger.ErrorWithFields("unhandled service error", logger.Fields{
			"error":      err.Error(),
			"path":       c.FullPath(),
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
	}
}
