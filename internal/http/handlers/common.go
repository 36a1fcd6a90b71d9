package handlers

import (
	"context"
	"net/http"
	"time"

	"pasajes/internal/domain"
	"pasajes/internal/http/middleware"
	"pasajes/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionManager is the store sign-in state as the handlers use it.
// *auth.Manager implements it.
type SessionManager interface {
	SignedIn() bool
	Status() (bool, time.Time)
	BeginSignIn() string
	CompleteSignIn(ctx context.Context, state, code string) error
	SignOut(ctx context.Context)
}

type Handler struct {
	Desk     *services.Desk
	Session  SessionManager
	Operator OperatorAuth
}

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
		"notice":     domain.Failure("Error", message),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "cuerpo vacío", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "datos inválidos", err)
		return false
	}
	return true
}

// respondNotice answers a user action with its outcome notice and payload fields.
func respondNotice(c *gin.Context, status int, notice domain.Notice, fields gin.H) {
	body := gin.H{}
	for k, v := range fields {
		body[k] = v
	}
	if !notice.IsZero() {
		body["notice"] = notice
	}
	c.JSON(status, body)
}
