package services

import (
	"fmt"
	"sort"
	"strings"

	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
	"pasajes/internal/utils"
)

// Passenger holds the free-text fields used when no client is bound.
type Passenger struct {
	TaxID string `json:"tax_id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingSession is one in-progress ticket purchase.
// Seats is kept ascending and never contains a seat taken in occupancy.
type BookingSession struct {
	trip      *models.Trip
	occupancy models.Occupancy
	seats     []int
	client    *models.Client
	passenger Passenger
}

// SeatToggle is the outcome of ToggleSeat.
type SeatToggle struct {
	Seat     int              `json:"seat"`
	Selected bool             `json:"selected"`
	Occupant *models.Occupant `json:"occupant,omitempty"`
	Seats    []int            `json:"seats"`
}

type BookingSummary struct {
	TripID    string  `json:"trip_id,omitempty"`
	Route     string  `json:"route"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Vehicle   string  `json:"vehicle"`
	Driver    string  `json:"driver"`
	Seats     []int   `json:"seats"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	Passenger string  `json:"passenger"`
	TaxID     string  `json:"tax_id"`
	NewClient bool    `json:"new_client"`
	CanCommit bool    `json:"can_commit"`
}

// SaleDraft is what a commit needs from the session.
type SaleDraft struct {
	Trip      models.Trip
	Seats     []int
	Client    *models.Client
	Passenger Passenger
}

func (b *BookingSession) Trip() (models.Trip, bool) {
	if b.trip == nil {
		return models.Trip{}, false
	}
	return *b.trip, true
}

func (b *BookingSession) Seats() []int { return append([]int(nil), b.seats...) }

func (b *BookingSession) Client() (models.Client, bool) {
	if b.client == nil {
		return models.Client{}, false
	}
	return *b.client, true
}

func (b *BookingSession) Passenger() Passenger { return b.passenger }

func (b *BookingSession) Occupancy() models.Occupancy { return b.occupancy }

// SeatGrid renders the selected trip's seats; empty without a trip.
func (b *BookingSession) SeatGrid() []models.SeatView {
	if b.trip == nil {
		return []models.SeatView{}
	}
	return b.occupancy.Grid(b.seats)
}

// SelectTrip replaces the trip, clears chosen seats and installs occ.
func (b *BookingSession) SelectTrip(trip models.Trip, occ models.Occupancy) domain.Notice {
	t := trip
	b.trip = &t
	b.occupancy = occ
	b.seats = nil
	return domain.Success("Viaje seleccionado", trip.RouteLabel())
}

// Refresh swaps in a recomputed occupancy for the same trip, dropping
// chosen seats that have since been sold.
func (b *BookingSession) Refresh(trip models.Trip, occ models.Occupancy) {
	t := trip
	b.trip = &t
	b.occupancy = occ
	kept := b.seats[:0]
	for _, n := range b.seats {
		if !occ.IsTaken(n) && n >= 1 && n <= occ.Capacity {
			kept = append(kept, n)
		}
	}
	b.seats = kept
}

// ToggleSeat flips a free seat in or out of the chosen set. On a taken
// seat it only reports the occupant.
func (b *BookingSession) ToggleSeat(n int) (SeatToggle, domain.Notice) {
	res := SeatToggle{Seat: n, Seats: b.Seats()}
	if b.trip == nil {
		return res, domain.Warning("Atención", "Primero selecciona un viaje")
	}
	if n < 1 || n > b.occupancy.Capacity {
		return res, domain.Warning("Asiento inválido", fmt.Sprintf("El asiento %d no existe en este vehículo", n))
	}
	if b.occupancy.IsTaken(n) {
		info, ok := b.occupancy.Info[n]
		if !ok {
			return res, domain.Failure("Ocupado", fmt.Sprintf("El asiento %d no está disponible", n))
		}
		res.Occupant = &info
		return res, domain.Notice{}
	}

	idx := -1
	for i, s := range b.seats {
		if s == n {
			idx = i
			break
		}
	}
	if idx >= 0 {
		b.seats = append(b.seats[:idx], b.seats[idx+1:]...)
	} else {
		b.seats = append(b.seats, n)
		res.Selected = true
	}
	sort.Ints(b.seats)
	res.Seats = b.Seats()
	return res, domain.Notice{}
}

// ResolveClient looks taxID up among clients by exact match.
func (b *BookingSession) ResolveClient(taxID string, clients []models.Client) (*models.Client, domain.Notice) {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return nil, domain.Warning("Atención", "Ingrese NIT o CI")
	}
	b.passenger.TaxID = taxID

	client, ok := findClient(clients, taxID)
	if !ok {
		b.client = nil
		return nil, domain.Warning("Cliente nuevo", "Complete los datos del pasajero")
	}
	c := client
	b.client = &c
	b.passenger.Name = client.Name
	b.passenger.Phone = client.Phone
	b.passenger.Email = client.Email
	return &c, domain.Success("Cliente encontrado", client.Name)
}

// SetPassenger stores the form fields as typed by the operator.
func (b *BookingSession) SetPassenger(p Passenger) {
	b.passenger = p
}

// CanCommit holds when a trip is selected, at least one seat is chosen
// and a tax id has been entered.
func (b *BookingSession) CanCommit() bool {
	return b.trip != nil && len(b.seats) > 0 && strings.TrimSpace(b.passenger.TaxID) != ""
}

// PassengerName prefers the bound client, then the typed name.
func (b *BookingSession) PassengerName() string {
	if b.client != nil && b.client.Name != "" {
		return b.client.Name
	}
	return b.passenger.Name
}

func (b *BookingSession) Summary() BookingSummary {
	s := BookingSummary{
		Route:     "-",
		Date:      "-",
		Time:      "-",
		Vehicle:   "-",
		Driver:    "-",
		Seats:     b.Seats(),
		Quantity:  len(b.seats),
		Passenger: utils.OrDefault(b.PassengerName(), "-"),
		TaxID:     strings.TrimSpace(b.passenger.TaxID),
		NewClient: b.client == nil && strings.TrimSpace(b.passenger.TaxID) != "",
		CanCommit: b.CanCommit(),
	}
	if b.trip != nil {
		s.TripID = b.trip.ID
		s.Route = b.trip.RouteLabel()
		s.Date = b.trip.Date
		s.Time = b.trip.Time
		s.Vehicle = b.trip.Plate
		s.Driver = b.trip.Driver
		s.UnitPrice = b.trip.Price
	}
	s.Total = float64(s.Quantity) * s.UnitPrice
	return s
}

func (b *BookingSession) Draft() SaleDraft {
	d := SaleDraft{Seats: b.Seats(), Passenger: b.passenger}
	if b.trip != nil {
		d.Trip = *b.trip
	}
	if b.client != nil {
		c := *b.client
		d.Client = &c
	}
	d.Passenger.TaxID = strings.TrimSpace(d.Passenger.TaxID)
	return d
}

func (b *BookingSession) Reset() {
	*b = BookingSession{}
}
