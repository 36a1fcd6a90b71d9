package models

import "pasajes/internal/domain"

// SaleRecord is one booked seat; a ticket spans one record per seat.
type SaleRecord struct {
	TicketID    string        `json:"ticket_id"`
	TripID      string        `json:"trip_id"`
	ClientTaxID string        `json:"client_tax_id"`
	Seat        string        `json:"seat"`
	SaleDate    string        `json:"sale_date"`
	SaleTime    string        `json:"sale_time"`
	UnitPrice   float64       `json:"unit_price"`
	Status      domain.Status `json:"status"`
}

func (s SaleRecord) Cancelled() bool {
	return s.Status == domain.StatusCancelled
}
