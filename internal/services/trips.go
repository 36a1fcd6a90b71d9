package services

import (
	"time"

	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
	"pasajes/internal/utils"
)

const (
	placeholder         = "N/A"
	unknownOccupantName = "Cliente"
)

// ComputeTrips joins active schedule entries with their route and vehicle
// and keeps those dated today or later. Source order is preserved.
func ComputeTrips(schedule []models.ScheduleEntry, routes []models.Route, vehicles []models.Vehicle, now time.Time, defaultCapacity int) []models.Trip {
	routeByID := indexRoutes(routes)
	vehicleByID := indexVehicles(vehicles)
	today := utils.StartOfDay(now)

	trips := make([]models.Trip, 0, len(schedule))
	for _, entry := range schedule {
		if entry.Status != domain.StatusActive {
			continue
		}
		date, err := utils.ParseDate(entry.Date, now.Location())
		if err != nil || date.Before(today) {
			continue
		}
		trips = append(trips, joinTrip(entry, routeByID, vehicleByID, defaultCapacity))
	}
	return trips
}

// joinTrip builds a trip from one entry, substituting placeholders for a
// missing route or vehicle.
func joinTrip(entry models.ScheduleEntry, routes map[string]models.Route, vehicles map[string]models.Vehicle, defaultCapacity int) models.Trip {
	trip := models.Trip{
		ID:          entry.ID,
		RouteID:     entry.RouteID,
		VehicleID:   entry.VehicleID,
		Origin:      placeholder,
		Destination: placeholder,
		Date:        entry.Date,
		Time:        entry.DepartureTime,
		Plate:       placeholder,
		Driver:      utils.OrDefault(entry.Driver, placeholder),
		Capacity:    defaultCapacity,
		Status:      entry.Status,
	}
	if route, ok := routes[entry.RouteID]; ok {
		trip.Origin = utils.OrDefault(route.Origin, placeholder)
		trip.Destination = utils.OrDefault(route.Destination, placeholder)
		trip.Price = route.Price
	}
	if vehicle, ok := vehicles[entry.VehicleID]; ok {
		trip.Plate = utils.OrDefault(vehicle.Plate, placeholder)
		if vehicle.Capacity > 0 {
			trip.Capacity = vehicle.Capacity
		}
	}
	return trip
}

// first match wins, like a linear find over the sheet
func indexRoutes(routes []models.Route) map[string]models.Route {
	out := make(map[string]models.Route, len(routes))
	for _, r := range routes {
		if _, seen := out[r.ID]; !seen {
			out[r.ID] = r
		}
	}
	return out
}

func indexVehicles(vehicles []models.Vehicle) map[string]models.Vehicle {
	out := make(map[string]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		if _, seen := out[v.ID]; !seen {
			out[v.ID] = v
		}
	}
	return out
}

func findClient(clients []models.Client, taxID string) (models.Client, bool) {
	for _, c := range clients {
		if c.TaxID == taxID {
			return c, true
		}
	}
	return models.Client{}, false
}

// ComputeOccupancy marks the seats held by non-cancelled sales of tripID.
// Sales with a non-numeric seat are ignored.
func ComputeOccupancy(tripID string, capacity int, sales []models.SaleRecord, clients []models.Client) models.Occupancy {
	occ := models.Occupancy{
		TripID:   tripID,
		Capacity: capacity,
		Taken:    map[int]bool{},
		Info:     map[int]models.Occupant{},
	}
	for _, sale := range sales {
		if sale.TripID != tripID || sale.Cancelled() {
			continue
		}
		seat, ok := utils.ParseSeat(sale.Seat)
		if !ok {
			continue
		}
		occupant := models.Occupant{
			Name:     unknownOccupantName,
			TaxID:    utils.OrDefault(sale.ClientTaxID, placeholder),
			TicketID: sale.TicketID,
		}
		if client, found := findClient(clients, sale.ClientTaxID); found {
			occupant.Name = client.Name
		}
		occ.Taken[seat] = true
		occ.Info[seat] = occupant
	}
	return occ
}
