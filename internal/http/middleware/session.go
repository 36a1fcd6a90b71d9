package middleware

import (
	"net/http"

	"pasajes/internal/domain"

	"github.com/gin-gonic/gin"
)

// SignedInChecker reports whether the store credential is live.
type SignedInChecker interface {
	SignedIn() bool
}

// RequireSignedIn blocks data routes until the operator has signed in to the store.
func RequireSignedIn(s SignedInChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.SignedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "not signed in",
				"code":       "signed_out",
				"request_id": GetRequestID(c),
				"notice":     domain.Warning("Atención", "Inicia sesión primero"),
			})
			return
		}
		c.Next()
	}
}
