package handlers

import (
	"net/http"

	"pasajes/internal/domain"
	"pasajes/internal/http/middleware"
	"pasajes/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/session
func (h *Handler) GetSession(c *gin.Context) {
	signedIn, expires := h.Session.Status()
	body := gin.H{"signed_in": signedIn}
	if signedIn {
		body["expires_at"] = expires
	}
	c.JSON(http.StatusOK, body)
}

// POST /api/session/sign-in
func (h *Handler) SignIn(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"auth_url": h.Session.BeginSignIn()})
}

// GET /api/session/callback
func (h *Handler) SessionCallback(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	code := c.Query("code")
	if denied := c.Query("error"); denied != "" {
		utils.LogEvent(reqID, "session", "callback", "denied="+denied)
		code = ""
	}

	if err := h.Session.CompleteSignIn(c.Request.Context(), c.Query("state"), code); err != nil {
		utils.LogEvent(reqID, "session", "callback", err.Error())
		RespondDomainError(c, err, domain.Failure("Error", "No se pudo iniciar sesión"))
		return
	}

	res, notice, err := h.Desk.Reload(c.Request.Context())
	if err != nil {
		utils.LogEvent(reqID, "session", "initial_load", err.Error())
	}
	respondNotice(c, http.StatusOK, notice, gin.H{"signed_in": true, "load": res})
}

// POST /api/session/sign-out
func (h *Handler) SignOut(c *gin.Context) {
	h.Session.SignOut(c.Request.Context())
	h.Desk.SignedOut()
	utils.LogEvent(middleware.GetRequestID(c), "session", "sign_out", "operator="+middleware.GetOperator(c))
	respondNotice(c, http.StatusOK, domain.Success("Sesión cerrada", "Hasta pronto"), gin.H{"signed_in": false})
}
