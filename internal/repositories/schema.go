package repositories

import (
	"strings"

	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
	"pasajes/internal/sheets"
	"pasajes/internal/utils"
)

// Header titles per sheet. Reads look cells up by these names; appends
// write values in exactly this column order.
var (
	ConfigColumns   = []string{"clave", "valor"}
	VehicleColumns  = []string{"id_vehiculo", "placa", "marca", "modelo", "capacidad", "estado"}
	RouteColumns    = []string{"id_ruta", "origen", "destino", "precio", "duracion"}
	ScheduleColumns = []string{"id_viaje", "id_ruta", "id_vehiculo", "fecha", "hora_salida", "conductor", "estado"}
	SaleColumns     = []string{"id_boleto", "id_viaje", "nit_cliente", "asiento", "fecha_venta", "hora_venta", "precio", "estado"}
	ClientColumns   = []string{"nit", "nombre", "telefono", "email", "direccion"}
)

// DecodeCompany keeps only rows with both key and value present.
func DecodeCompany(recs []sheets.Record) models.CompanyProfile {
	out := models.CompanyProfile{}
	for _, r := range recs {
		key, value := r.Get("clave"), r.Get("valor")
		if key != "" && value != "" {
			out[key] = value
		}
	}
	return out
}

func DecodeVehicles(recs []sheets.Record) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(recs))
	for _, r := range recs {
		capacity, _ := utils.ParseSeat(r.Get("capacidad"))
		out = append(out, models.Vehicle{
			ID:       r.Get("id_vehiculo"),
			Plate:    r.Get("placa"),
			Brand:    r.Get("marca"),
			Model:    r.Get("modelo"),
			Capacity: capacity,
			Status:   r.Get("estado"),
		})
	}
	return out
}

func DecodeRoutes(recs []sheets.Record) []models.Route {
	out := make([]models.Route, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.Route{
			ID:          r.Get("id_ruta"),
			Origin:      r.Get("origen"),
			Destination: r.Get("destino"),
			Price:       utils.ParseAmount(r.Get("precio")),
			Duration:    r.Get("duracion"),
		})
	}
	return out
}

func DecodeSchedule(recs []sheets.Record) []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.ScheduleEntry{
			ID:            r.Get("id_viaje"),
			RouteID:       r.Get("id_ruta"),
			VehicleID:     r.Get("id_vehiculo"),
			Date:          strings.TrimSpace(r.Get("fecha")),
			DepartureTime: r.Get("hora_salida"),
			Driver:        r.Get("conductor"),
			Status:        domain.Status(r.Get("estado")),
		})
	}
	return out
}

func DecodeSales(recs []sheets.Record) []models.SaleRecord {
	out := make([]models.SaleRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.SaleRecord{
			TicketID:    r.Get("id_boleto"),
			TripID:      r.Get("id_viaje"),
			ClientTaxID: r.Get("nit_cliente"),
			Seat:        r.Get("asiento"),
			SaleDate:    r.Get("fecha_venta"),
			SaleTime:    r.Get("hora_venta"),
			UnitPrice:   utils.ParseAmount(r.Get("precio")),
			Status:      domain.Status(r.Get("estado")),
		})
	}
	return out
}

func DecodeClients(recs []sheets.Record) []models.Client {
	out := make([]models.Client, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.Client{
			TaxID:   r.Get("nit"),
			Name:    r.Get("nombre"),
			Phone:   r.Get("telefono"),
			Email:   r.Get("email"),
			Address: r.Get("direccion"),
		})
	}
	return out
}

// SaleRow lays a sale out in Ventas column order. The seat goes in as a
// number so the sheet keeps it numeric.
func SaleRow(s models.SaleRecord) []any {
	var seat any = s.Seat
	if n, ok := utils.ParseSeat(s.Seat); ok {
		seat = n
	}
	return []any{s.TicketID, s.TripID, s.ClientTaxID, seat, s.SaleDate, s.SaleTime, s.UnitPrice, string(s.Status)}
}

// ClientRow lays a client out in Clientes column order.
func ClientRow(c models.Client) []any {
	return []any{c.TaxID, c.Name, c.Phone, c.Email, c.Address}
}
