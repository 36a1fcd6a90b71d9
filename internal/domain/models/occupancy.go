package models

type SeatState string

const (
	SeatFree     SeatState = "free"
	SeatHeld     SeatState = "held"
	SeatOccupied SeatState = "occupied"
)

type Occupant struct {
	Name     string `json:"name"`
	TaxID    string `json:"tax_id"`
	TicketID string `json:"ticket_id"`
}

// Occupancy is the seat state of one trip derived from its sales.
// Taken and Info are built together; Info may lack a taken seat only if
// the two drift apart.
type Occupancy struct {
	TripID   string
	Capacity int
	Taken    map[int]bool
	Info     map[int]Occupant
}

func (o Occupancy) IsTaken(seat int) bool {
	return o.Taken[seat]
}

type SeatView struct {
	Number   int       `json:"number"`
	State    SeatState `json:"state"`
	Occupant *Occupant `json:"occupant,omitempty"`
}

// Grid renders seats 1..Capacity, marking held the ones in the current session.
func (o Occupancy) Grid(held []int) []SeatView {
	heldSet := make(map[int]bool, len(held))
	for _, n := range held {
		heldSet[n] = true
	}
	out := make([]SeatView, 0, o.Capacity)
	for n := 1; n <= o.Capacity; n++ {
		view := SeatView{Number: n, State: SeatFree}
		switch {
		case o.Taken[n]:
			view.State = SeatOccupied
			if info, ok := o.Info[n]; ok {
				occ := info
				view.Occupant = &occ
			}
		case heldSet[n]:
			view.State = SeatHeld
		}
		out = append(out, view)
	}
	return out
}
