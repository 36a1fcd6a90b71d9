package config

// DefaultSeatCapacity is the seat count of the operator's standard vehicle.
const DefaultSeatCapacity = 7

// SheetNames maps each dataset to its sheet title in the workbook.
// Titles must match the workbook exactly, including case.
type SheetNames struct {
	Config   string
	Vehicles string
	Routes   string
	Schedule string
	Sales    string
	Clients  string
}

func DefaultSheetNames() SheetNames {
	return SheetNames{
		Config:   "Config",
		Vehicles: "Vehiculos",
		Routes:   "Rutas",
		Schedule: "Programacion",
		Sales:    "Ventas",
		Clients:  "Clientes",
	}
}

// LoadSheetNames applies SHEET_* overrides on top of the defaults.
func LoadSheetNames() SheetNames {
	names := DefaultSheetNames()
	names.Config = getEnv("SHEET_CONFIG", names.Config)
	names.Vehicles = getEnv("SHEET_VEHICLES", names.Vehicles)
	names.Routes = getEnv("SHEET_ROUTES", names.Routes)
	names.Schedule = getEnv("SHEET_SCHEDULE", names.Schedule)
	names.Sales = getEnv("SHEET_SALES", names.Sales)
	names.Clients = getEnv("SHEET_CLIENTS", names.Clients)
	return names
}
