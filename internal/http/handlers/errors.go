package handlers

import (
	"net/http"

	"pasajes/internal/domain"
	"pasajes/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details any            `json:"details,omitempty"`
	Notice  *domain.Notice `json:"notice,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, notice domain.Notice) {
	if code == "" {
		code = http.StatusText(status)
	}
	if notice.IsZero() {
		notice = domain.Failure("Error", message)
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      message,
			"code":       code,
			"request_id": reqID,
			"message":    message,
			"notice":     notice,
		})
		return
	}
	c.JSON(status, ErrorResponse{Error: message, Code: code, Notice: &notice})
}

// RespondDomainError maps domain errors to HTTP responses. notice, when set,
// is what the operator sees; otherwise a generic one is built.
func RespondDomainError(c *gin.Context, err error, notice domain.Notice) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), notice)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), notice)
	case domain.IsAuth(err):
		respondError(c, http.StatusUnauthorized, "auth_failed", err.Error(), notice)
	case domain.IsStore(err):
		respondError(c, http.StatusBadGateway, "store_error", "error de la hoja de cálculo", notice)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "ocurrió un error", notice)
	}
}
