package middleware

import (
	"errors"
	"net/http"
	"strings"

	"pasajes/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const operatorKey = "operator"

// RequireOperator accepts requests carrying a valid operator bearer token.
func RequireOperator(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if raw == "" {
			abortUnauthorized(c, "Falta el token de operador")
			return
		}
		subject, err := ParseOperatorToken(raw, secret)
		if err != nil {
			abortUnauthorized(c, "Token de operador inválido")
			return
		}
		c.Set(operatorKey, subject)
		c.Next()
	}
}

// ParseOperatorToken verifies an HS256 token and returns its subject.
func ParseOperatorToken(raw string, secret []byte) (string, error) {
	tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims")
	}
	if role, _ := claims["role"].(string); role != "operator" {
		return "", errors.New("not an operator token")
	}
	return claims.GetSubject()
}

func GetOperator(c *gin.Context) string {
	return c.GetString(operatorKey)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
		"notice":     domain.Failure("No autorizado", msg),
	})
}
