package services

import (
	"reflect"
	"testing"

	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
)

func sessionWithTrip(price float64, taken map[int]models.Occupant) *BookingSession {
	occ := models.Occupancy{TripID: "P1", Capacity: 7, Taken: map[int]bool{}, Info: map[int]models.Occupant{}}
	for n, o := range taken {
		occ.Taken[n] = true
		occ.Info[n] = o
	}
	var b BookingSession
	b.SelectTrip(models.Trip{ID: "P1", Origin: "A", Destination: "B", Date: "2026-06-15", Time: "08:00", Plate: "111", Driver: "Luis", Price: price, Capacity: 7}, occ)
	return &b
}

func TestToggleSeatWithoutTrip(t *testing.T) {
	var b BookingSession
	for _, n := range []int{1, 3, 1, 7} {
		res, notice := b.ToggleSeat(n)
		if notice.Type != domain.NoticeWarning || notice.Message != "Primero selecciona un viaje" {
			t.Fatalf("unexpected notice %+v", notice)
		}
		if len(res.Seats) != 0 || len(b.Seats()) != 0 {
			t.Fatalf("seats mutated without a trip: %v", b.Seats())
		}
	}
}

func TestToggleSeatKeepsAscendingAndIsIdempotent(t *testing.T) {
	b := sessionWithTrip(50, nil)
	for _, n := range []int{5, 2, 7} {
		b.ToggleSeat(n)
	}
	before := b.Seats()
	if !reflect.DeepEqual(before, []int{2, 5, 7}) {
		t.Fatalf("seats not sorted: %v", before)
	}

	res, _ := b.ToggleSeat(3)
	if !res.Selected || !reflect.DeepEqual(res.Seats, []int{2, 3, 5, 7}) {
		t.Fatalf("unexpected toggle result %+v", res)
	}
	res, _ = b.ToggleSeat(3)
	if res.Selected || !reflect.DeepEqual(b.Seats(), before) {
		t.Fatalf("double toggle should restore %v, got %v", before, b.Seats())
	}
}

func TestToggleOccupiedSeatIsReadOnly(t *testing.T) {
	b := sessionWithTrip(50, map[int]models.Occupant{4: {Name: "Rosa", TaxID: "555", TicketID: "T1"}})
	b.ToggleSeat(1)

	res, notice := b.ToggleSeat(4)
	if !notice.IsZero() {
		t.Fatalf("occupied lookup should not raise a notice: %+v", notice)
	}
	if res.Occupant == nil || res.Occupant.Name != "Rosa" {
		t.Fatalf("expected occupant info, got %+v", res)
	}
	if !reflect.DeepEqual(b.Seats(), []int{1}) {
		t.Fatalf("occupied seat changed the selection: %v", b.Seats())
	}
}

func TestToggleOccupiedSeatMissingInfo(t *testing.T) {
	b := sessionWithTrip(50, nil)
	b.occupancy.Taken[6] = true

	res, notice := b.ToggleSeat(6)
	if notice.Type != domain.NoticeError || notice.Message != "El asiento 6 no está disponible" {
		t.Fatalf("unexpected notice %+v", notice)
	}
	if res.Occupant != nil || len(b.Seats()) != 0 {
		t.Fatalf("inconsistent seat must not be selected")
	}
}

func TestToggleSeatOutOfRange(t *testing.T) {
	b := sessionWithTrip(50, nil)
	for _, n := range []int{0, 8, -1} {
		if _, notice := b.ToggleSeat(n); notice.Type != domain.NoticeWarning {
			t.Fatalf("seat %d should be rejected, notice %+v", n, notice)
		}
	}
	if len(b.Seats()) != 0 {
		t.Fatalf("out of range seats selected: %v", b.Seats())
	}
}

func TestSelectTripClearsSeats(t *testing.T) {
	b := sessionWithTrip(50, nil)
	b.ToggleSeat(2)
	notice := b.SelectTrip(models.Trip{ID: "P2", Origin: "B", Destination: "A", Capacity: 7}, models.Occupancy{Capacity: 7})
	if len(b.Seats()) != 0 {
		t.Fatalf("select trip should clear seats")
	}
	if notice.Type != domain.NoticeSuccess || notice.Message != "B → A" {
		t.Fatalf("unexpected notice %+v", notice)
	}
}

func TestSummaryTotals(t *testing.T) {
	b := sessionWithTrip(50.0, nil)
	b.ToggleSeat(1)
	b.ToggleSeat(2)

	s := b.Summary()
	if s.Quantity != 2 || s.Total != 100.0 || s.UnitPrice != 50.0 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Route != "A → B" || s.Vehicle != "111" || s.Passenger != "-" {
		t.Fatalf("unexpected labels %+v", s)
	}

	b.SetPassenger(Passenger{Name: "Pedro"})
	if b.Summary().Passenger != "Pedro" {
		t.Fatalf("typed name should show when no client is bound")
	}
}

func TestSummaryWithoutTrip(t *testing.T) {
	var b BookingSession
	s := b.Summary()
	if s.Route != "-" || s.Quantity != 0 || s.Total != 0 || s.CanCommit {
		t.Fatalf("unexpected empty summary %+v", s)
	}
}

func TestCanCommit(t *testing.T) {
	cases := []struct {
		name  string
		trip  bool
		seats []int
		taxID string
		want  bool
	}{
		{"all present", true, []int{1}, "123", true},
		{"no trip", false, nil, "123", false},
		{"no seats", true, nil, "123", false},
		{"empty tax id", true, []int{1}, "", false},
		{"blank tax id", true, []int{1}, "   ", false},
	}
	for _, tc := range cases {
		var b *BookingSession
		if tc.trip {
			b = sessionWithTrip(50, nil)
		} else {
			b = &BookingSession{}
		}
		for _, n := range tc.seats {
			b.ToggleSeat(n)
		}
		b.SetPassenger(Passenger{TaxID: tc.taxID})
		if got := b.CanCommit(); got != tc.want {
			t.Fatalf("%s: CanCommit = %v, want %v", tc.name, got, tc.want)
		}
		if b.Summary().CanCommit != tc.want {
			t.Fatalf("%s: summary disagrees with CanCommit", tc.name)
		}
	}
}

func TestResolveClient(t *testing.T) {
	clients := []models.Client{{TaxID: "555", Name: "Rosa", Phone: "700", Email: "r@x"}}
	b := sessionWithTrip(50, nil)

	c, notice := b.ResolveClient(" 555 ", clients)
	if c == nil || notice.Type != domain.NoticeSuccess {
		t.Fatalf("expected client, got %v %+v", c, notice)
	}
	p := b.Passenger()
	if p.Name != "Rosa" || p.Phone != "700" || p.Email != "r@x" || p.TaxID != "555" {
		t.Fatalf("passenger not populated: %+v", p)
	}

	c, notice = b.ResolveClient("999", clients)
	if c != nil || notice.Title != "Cliente nuevo" {
		t.Fatalf("expected new client state, got %v %+v", c, notice)
	}
	if _, bound := b.Client(); bound {
		t.Fatalf("client should be unbound")
	}
	if !b.Summary().NewClient {
		t.Fatalf("summary should flag a new client")
	}

	if _, notice = b.ResolveClient("  ", clients); notice.Message != "Ingrese NIT o CI" {
		t.Fatalf("blank lookup notice %+v", notice)
	}
}

func TestRefreshPrunesSoldSeats(t *testing.T) {
	b := sessionWithTrip(50, nil)
	b.ToggleSeat(2)
	b.ToggleSeat(3)

	occ := models.Occupancy{Capacity: 7, Taken: map[int]bool{3: true}, Info: map[int]models.Occupant{3: {Name: "x"}}}
	trip, _ := b.Trip()
	b.Refresh(trip, occ)
	if !reflect.DeepEqual(b.Seats(), []int{2}) {
		t.Fatalf("sold seat not pruned: %v", b.Seats())
	}
}

func TestReset(t *testing.T) {
	b := sessionWithTrip(50, nil)
	b.ToggleSeat(1)
	b.SetPassenger(Passenger{TaxID: "1", Name: "x"})
	b.Reset()
	if _, ok := b.Trip(); ok || len(b.Seats()) != 0 || b.Passenger() != (Passenger{}) {
		t.Fatalf("reset left state behind")
	}
}
