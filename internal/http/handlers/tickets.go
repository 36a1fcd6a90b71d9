package handlers

import (
	"net/http"

	"pasajes/internal/domain"
	"pasajes/internal/http/middleware"
	"pasajes/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ticket(c *gin.Context) (services.Receipt, bool) {
	receipt, err := h.Desk.Ticket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err, domain.Warning("Atención", "Boleto no encontrado"))
		return services.Receipt{}, false
	}
	return receipt, true
}

// GET /api/tickets/:id
func (h *Handler) GetTicket(c *gin.Context) {
	receipt, ok := h.ticket(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": receipt, "qr_payload": receipt.QRPayload()})
}

// GET /api/tickets/:id/pdf returns the printable ticket (inline).
func (h *Handler) GetTicketPDF(c *gin.Context) {
	receipt, ok := h.ticket(c)
	if !ok {
		return
	}
	svc := h.Desk.Tickets
	svc.RequestID = middleware.GetRequestID(c)
	pdfBytes, filename, err := svc.PDF(receipt)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "pdf_failed", "no se pudo generar el boleto", domain.Notice{})
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/tickets/:id/qr.png
func (h *Handler) GetTicketQR(c *gin.Context) {
	receipt, ok := h.ticket(c)
	if !ok {
		return
	}
	png, err := h.Desk.Tickets.QRCode(receipt)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "qr_failed", "no se pudo generar el código", domain.Notice{})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
