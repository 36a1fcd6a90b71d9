package handlers

import (
	"net/http"
	"strconv"

	"pasajes/internal/domain"
	"pasajes/internal/http/middleware"
	"pasajes/internal/services"
	"pasajes/internal/utils"

	"github.com/gin-gonic/gin"
)

type selectTripRequest struct {
	TripID string `json:"trip_id"`
}

type clientLookupRequest struct {
	TaxID string `json:"tax_id"`
}

// GET /api/booking
func (h *Handler) GetBooking(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"booking": h.Desk.View()})
}

// DELETE /api/booking
func (h *Handler) ResetBooking(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"booking": h.Desk.ResetBooking()})
}

// POST /api/booking/trip
func (h *Handler) SelectTrip(c *gin.Context) {
	var req selectTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.TripID == "" {
		RespondDomainError(c, domain.ValidationError{Field: "trip_id", Msg: "requerido"}, domain.Warning("Atención", "Seleccione un viaje"))
		return
	}

	view, notice, err := h.Desk.SelectTrip(req.TripID)
	if err != nil {
		RespondDomainError(c, err, notice)
		return
	}
	respondNotice(c, http.StatusOK, notice, gin.H{"booking": view})
}

// POST /api/booking/seats/:seat/toggle
func (h *Handler) ToggleSeat(c *gin.Context) {
	seat, err := strconv.Atoi(c.Param("seat"))
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "seat", Msg: "debe ser un número"}, domain.Warning("Asiento inválido", "El asiento debe ser un número"))
		return
	}
	res, view, notice := h.Desk.ToggleSeat(seat)
	respondNotice(c, http.StatusOK, notice, gin.H{"toggle": res, "booking": view})
}

// POST /api/booking/client/lookup
func (h *Handler) LookupClient(c *gin.Context) {
	var req clientLookupRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, notice := h.Desk.LookupClient(req.TaxID)
	respondNotice(c, http.StatusOK, notice, gin.H{"booking": view})
}

// PUT /api/booking/passenger
func (h *Handler) SetPassenger(c *gin.Context) {
	var req services.Passenger
	if !BindJSONOrError(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": h.Desk.SetPassenger(req)})
}

// POST /api/booking/commit
func (h *Handler) CommitBooking(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	receipt, notice, err := h.Desk.Commit(c.Request.Context(), reqID)
	if err != nil {
		utils.LogEvent(reqID, "booking", "commit", err.Error())
		RespondDomainError(c, err, notice)
		return
	}
	respondNotice(c, http.StatusCreated, notice, gin.H{
		"receipt": receipt,
		"booking": h.Desk.View(),
	})
}
