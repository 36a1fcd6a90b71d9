package models

import "pasajes/internal/domain"

// ScheduleEntry is one row of the Programacion sheet.
type ScheduleEntry struct {
	ID            string        `json:"id"`
	RouteID       string        `json:"route_id"`
	VehicleID     string        `json:"vehicle_id"`
	Date          string        `json:"date"`
	DepartureTime string        `json:"departure_time"`
	Driver        string        `json:"driver"`
	Status        domain.Status `json:"status"`
}
