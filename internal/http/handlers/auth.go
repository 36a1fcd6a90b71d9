package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// OperatorAuth is the single desk operator account.
type OperatorAuth struct {
	Username     string
	PasswordHash string
	Secret       []byte
	TTL          time.Duration
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	username := strings.TrimSpace(req.Username)
	if h.Operator.PasswordHash == "" || username != h.Operator.Username {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.Operator.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
		return
	}

	expires := time.Now().Add(h.Operator.TTL)
	tokenString, err := IssueOperatorToken(h.Operator.Secret, username, expires)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      tokenString,
		"expires_at": expires,
		"user":       gin.H{"username": username, "role": "operator"},
	})
}

func IssueOperatorToken(secret []byte, username string, expires time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": "operator",
		"exp":  expires.Unix(),
	})
	return token.SignedString(secret)
}
