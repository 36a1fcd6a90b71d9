package sheets

import (
	"time"

	"pasajes/internal/config"
)

// SeedDemo fills m with a small workbook: two trips today and tomorrow,
// one sold seat and one cancelled sale.
func SeedDemo(m *MemoryStore, names config.SheetNames, now time.Time) {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	m.SetTable(names.Config, []string{"clave", "valor"},
		[]string{"empresa", "TRANSPORTE SURUBÍ"},
		[]string{"direccion", "Av. Principal s/n"},
		[]string{"nit", "1020304050"},
		[]string{"telefono", "70000000"},
	)
	m.SetTable(names.Vehicles, []string{"id_vehiculo", "placa", "marca", "modelo", "capacidad", "estado"},
		[]string{"V1", "2345-ABC", "Toyota", "Hiace", "7", "ACTIVO"},
	)
	m.SetTable(names.Routes, []string{"id_ruta", "origen", "destino", "precio", "duracion"},
		[]string{"R1", "Trinidad", "San Ignacio", "50", "3h"},
		[]string{"R2", "San Ignacio", "Trinidad", "50", "3h"},
	)
	m.SetTable(names.Schedule, []string{"id_viaje", "id_ruta", "id_vehiculo", "fecha", "hora_salida", "conductor", "estado"},
		[]string{"P0", "R1", "V1", yesterday, "07:00", "Juan Pérez", "ACTIVO"},
		[]string{"P1", "R1", "V1", today, "08:00", "Juan Pérez", "ACTIVO"},
		[]string{"P2", "R2", "V1", tomorrow, "15:30", "Juan Pérez", "ACTIVO"},
	)
	m.SetTable(names.Sales, []string{"id_boleto", "id_viaje", "nit_cliente", "asiento", "fecha_venta", "hora_venta", "precio", "estado"},
		[]string{"BOL-DEMO-0001", "P1", "4455667", "3", today, "06:10", "50", "ACTIVO"},
		[]string{"BOL-DEMO-0002", "P1", "4455667", "5", today, "06:12", "50", "CANCELADO"},
	)
	m.SetTable(names.Clients, []string{"nit", "nombre", "telefono", "email", "direccion"},
		[]string{"4455667", "María Rojas", "71234567", "maria@example.com", ""},
	)
}
