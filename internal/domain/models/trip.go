package models

import "pasajes/internal/domain"

// Trip is a schedule entry joined with its route and vehicle.
// It is rebuilt on every reload and never persisted.
type Trip struct {
	ID          string        `json:"id"`
	RouteID     string        `json:"route_id"`
	VehicleID   string        `json:"vehicle_id"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Price       float64       `json:"price"`
	Plate       string        `json:"plate"`
	Driver      string        `json:"driver"`
	Capacity    int           `json:"capacity"`
	Status      domain.Status `json:"status"`
}

// RouteLabel renders "origin → destination".
func (t Trip) RouteLabel() string {
	return t.Origin + " → " + t.Destination
}
