package handlers

import (
	"net/http"

	"pasajes/internal/http/middleware"
	"pasajes/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/data/reload
func (h *Handler) Reload(c *gin.Context) {
	res, notice, err := h.Desk.Reload(c.Request.Context())
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "data", "reload", err.Error())
		respondError(c, http.StatusBadGateway, "load_failed", err.Error(), notice)
		return
	}
	respondNotice(c, http.StatusOK, notice, gin.H{"load": res})
}

// GET /api/trips
func (h *Handler) GetTrips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trips": h.Desk.Trips()})
}

// GET /api/company
func (h *Handler) GetCompany(c *gin.Context) {
	company := h.Desk.Company()
	c.JSON(http.StatusOK, gin.H{
		"name":    company.Name(),
		"address": company.Address(),
		"tax_id":  company.TaxID(),
		"phone":   company.Phone(),
		"config":  company,
	})
}
