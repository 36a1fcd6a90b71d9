package services

import (
	"context"
	"fmt"
	"sync"

	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
	"pasajes/internal/utils"
)

// Desk owns the snapshot and the booking session. Every mutation goes
// through its mutex, so the booking session has a single writer.
type Desk struct {
	Aggregator *Aggregator
	Sales      SaleService
	Tickets    TicketService

	mu      sync.Mutex
	booking BookingSession
}

// BookingView is the booking session as the UI renders it.
type BookingView struct {
	Summary   BookingSummary    `json:"summary"`
	Seats     []models.SeatView `json:"seats"`
	Client    *models.Client    `json:"client,omitempty"`
	Passenger Passenger         `json:"passenger"`
}

func (d *Desk) viewLocked() BookingView {
	v := BookingView{
		Summary:   d.booking.Summary(),
		Seats:     d.booking.SeatGrid(),
		Passenger: d.booking.Passenger(),
	}
	if c, ok := d.booking.Client(); ok {
		v.Client = &c
	}
	return v
}

func (d *Desk) View() BookingView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewLocked()
}

func (d *Desk) Trips() []models.Trip {
	trips := d.Aggregator.Snapshot().Trips
	if trips == nil {
		return []models.Trip{}
	}
	return trips
}

func (d *Desk) Company() models.CompanyProfile {
	company := d.Aggregator.Snapshot().Company
	if company == nil {
		return models.CompanyProfile{}
	}
	return company
}

// Reload refreshes every snapshot and reconciles the booking session.
func (d *Desk) Reload(ctx context.Context) (LoadResult, domain.Notice, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	res, err := d.reloadLocked(ctx)
	if err != nil {
		return res, domain.Failure("Error", "No se pudieron cargar los datos"), err
	}
	return res, domain.Success("Datos cargados", fmt.Sprintf("%d viajes disponibles", res.Trips)), nil
}

func (d *Desk) reloadLocked(ctx context.Context) (LoadResult, error) {
	res, err := d.Aggregator.LoadAll(ctx)
	if err != nil {
		return res, err
	}
	current, ok := d.booking.Trip()
	if !ok {
		return res, nil
	}
	snap := d.Aggregator.Snapshot()
	trip, still := snap.Trip(current.ID)
	if !still {
		utils.LogEvent("", "booking", "reload", "trip="+current.ID+" no longer listed, session reset")
		d.booking.Reset()
		return res, nil
	}
	d.booking.Refresh(trip, ComputeOccupancy(trip.ID, trip.Capacity, snap.Sales, snap.Clients))
	return res, nil
}

// SignedOut discards snapshots and the booking session.
func (d *Desk) SignedOut() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.booking.Reset()
	d.Aggregator.Clear()
}

func (d *Desk) SelectTrip(id string) (BookingView, domain.Notice, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	snap := d.Aggregator.Snapshot()
	trip, ok := snap.Trip(id)
	if !ok {
		return d.viewLocked(), domain.Warning("Atención", "Viaje no encontrado"), domain.NotFoundError{Resource: "viaje " + id}
	}
	notice := d.booking.SelectTrip(trip, ComputeOccupancy(trip.ID, trip.Capacity, snap.Sales, snap.Clients))
	return d.viewLocked(), notice, nil
}

func (d *Desk) ToggleSeat(n int) (SeatToggle, BookingView, domain.Notice) {
	d.mu.Lock()
	defer d.mu.Unlock()
	res, notice := d.booking.ToggleSeat(n)
	return res, d.viewLocked(), notice
}

func (d *Desk) LookupClient(taxID string) (BookingView, domain.Notice) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, notice := d.booking.ResolveClient(taxID, d.Aggregator.Snapshot().Clients)
	return d.viewLocked(), notice
}

func (d *Desk) SetPassenger(p Passenger) BookingView {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.booking.SetPassenger(p)
	return d.viewLocked()
}

func (d *Desk) ResetBooking() BookingView {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.booking.Reset()
	return d.viewLocked()
}

// Commit records the booking session. The caller sees a ValidationError
// when the session is not eligible; store failures keep the session as is.
func (d *Desk) Commit(ctx context.Context, requestID string) (Receipt, domain.Notice, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.booking.CanCommit() {
		return Receipt{}, domain.Warning("Atención", "Seleccione viaje, asientos y NIT/CI"),
			domain.ValidationError{Field: "booking", Msg: "sesión de venta incompleta"}
	}

	svc := d.Sales
	svc.RequestID = requestID
	receipt, err := svc.Commit(ctx, d.booking.Draft(), d.Aggregator.Snapshot())
	if err != nil {
		return Receipt{}, domain.Failure("Error", "No se pudo guardar la venta"), err
	}

	d.booking.Reset()
	if _, err := d.reloadLocked(ctx); err != nil {
		utils.LogEvent(requestID, "sales", "reload_after_commit", err.Error())
	}
	return receipt, domain.Success("¡Venta registrada!", "Boleto: "+receipt.TicketID), nil
}

// Ticket rebuilds a sold ticket from the current sales snapshot.
func (d *Desk) Ticket(ticketID string) (Receipt, error) {
	return d.Tickets.Lookup(d.Aggregator.Snapshot(), ticketID)
}
