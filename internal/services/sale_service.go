package services

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
	"pasajes/internal/utils"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SaleWriter appends rows to the sales and clients sheets.
type SaleWriter interface {
	AppendSale(ctx context.Context, s models.SaleRecord) error
	AppendClient(ctx context.Context, c models.Client) error
}

type SaleService struct {
	Writer    SaleWriter
	Now       func() time.Time
	Rand      func(n int) int
	RequestID string
}

func (s SaleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s SaleService) randn(n int) int {
	if s.Rand != nil {
		return s.Rand(n)
	}
	return rand.Intn(n)
}

// NewTicketID renders BOL-YYYYMMDD-NNNN. Collisions are not checked.
func NewTicketID(now time.Time, randn func(int) int) string {
	return fmt.Sprintf("BOL-%s-%04d", utils.FormatCompactDate(now), randn(10000))
}

// Commit writes one sale row per chosen seat, in ascending seat order and
// one at a time, then a client row when the passenger is new. The first
// failing append stops the commit; rows already written stay in the sheet.
func (s SaleService) Commit(ctx context.Context, draft SaleDraft, snap Snapshot) (Receipt, error) {
	ctx, span := tracer.Start(ctx, "sales.commit")
	defer span.End()

	now := s.now()
	ticketID := NewTicketID(now, s.randn)
	seats := utils.SortedCopy(draft.Seats)
	taxID := strings.TrimSpace(draft.Passenger.TaxID)
	span.SetAttributes(attribute.String("ticket_id", ticketID), attribute.Int("seats", len(seats)))

	saleDate := utils.FormatDate(now)
	saleTime := utils.FormatHourMinute(now)
	for _, seat := range seats {
		sale := models.SaleRecord{
			TicketID:    ticketID,
			TripID:      draft.Trip.ID,
			ClientTaxID: taxID,
			Seat:        strconv.Itoa(seat),
			SaleDate:    saleDate,
			SaleTime:    saleTime,
			UnitPrice:   draft.Trip.Price,
			Status:      domain.StatusActive,
		}
		if err := s.Writer.AppendSale(ctx, sale); err != nil {
			utils.LogEventCtx(ctx, s.RequestID, "sales", "append_sale", fmt.Sprintf("ticket=%s seat=%d err=%v", ticketID, seat, err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "append sale")
			return Receipt{}, err
		}
	}

	name := strings.TrimSpace(draft.Passenger.Name)
	newClient := false
	if draft.Client == nil {
		if _, exists := findClient(snap.Clients, taxID); !exists && name != "" {
			client := models.Client{
				TaxID: taxID,
				Name:  name,
				Phone: strings.TrimSpace(draft.Passenger.Phone),
				Email: strings.TrimSpace(draft.Passenger.Email),
			}
			if err := s.Writer.AppendClient(ctx, client); err != nil {
				utils.LogEventCtx(ctx, s.RequestID, "sales", "append_client", fmt.Sprintf("ticket=%s err=%v", ticketID, err))
				span.RecordError(err)
				span.SetStatus(codes.Error, "append client")
				return Receipt{}, err
			}
			newClient = true
		}
	}

	passenger := name
	if draft.Client != nil && draft.Client.Name != "" {
		passenger = draft.Client.Name
	}
	utils.LogEventCtx(ctx, s.RequestID, "sales", "commit", fmt.Sprintf("ticket=%s trip=%s seats=%s new_client=%v", ticketID, draft.Trip.ID, utils.JoinSeats(seats), newClient))

	return newReceipt(ticketID, snap.Company, draft.Trip, seats, passenger, taxID, draft.Trip.Price, saleDate, saleTime, newClient), nil
}
