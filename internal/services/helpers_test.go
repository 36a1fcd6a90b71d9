package services

import (
	"time"

	"pasajes/internal/config"
	"pasajes/internal/repositories"
	"pasajes/internal/sheets"
)

var fixedNow = time.Date(2026, 6, 15, 14, 30, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

// newWorkbook seeds a store with trips on and around fixedNow.
func newWorkbook() (*sheets.MemoryStore, repositories.SheetsRepo) {
	names := config.DefaultSheetNames()
	store := sheets.NewMemoryStore()
	store.SetTable(names.Config, repositories.ConfigColumns,
		[]string{"empresa", "Surubí Tours"},
		[]string{"direccion", "Calle 1"},
		[]string{"nit", "100200"},
	)
	store.SetTable(names.Vehicles, repositories.VehicleColumns,
		[]string{"V1", "111-AAA", "Toyota", "Hiace", "7", "ACTIVO"},
		[]string{"V2", "222-BBB", "Nissan", "Urvan", "", "ACTIVO"},
	)
	store.SetTable(names.Routes, repositories.RouteColumns,
		[]string{"R1", "Trinidad", "San Borja", "50", "4h"},
	)
	store.SetTable(names.Schedule, repositories.ScheduleColumns,
		[]string{"P1", "R1", "V1", "2026-06-15", "08:00", "Luis", "ACTIVO"},
		[]string{"P2", "R1", "V2", "2026-06-20", "15:00", "", "ACTIVO"},
		[]string{"P3", "R1", "V1", "2026-06-14", "08:00", "Luis", "ACTIVO"},
	)
	store.SetTable(names.Sales, repositories.SaleColumns,
		[]string{"BOL-20260610-0001", "P1", "555", "2", "2026-06-10", "09:00", "50", "ACTIVO"},
		[]string{"BOL-20260610-0001", "P1", "555", "1", "2026-06-10", "09:00", "50", "ACTIVO"},
		[]string{"BOL-20260611-0002", "P1", "777", "3", "2026-06-11", "09:00", "50", "CANCELADO"},
	)
	store.SetTable(names.Clients, repositories.ClientColumns,
		[]string{"555", "Rosa Vaca", "700", "rosa@example.com", ""},
	)
	return store, repositories.SheetsRepo{Store: store, Sheets: names}
}

func newDesk(repo repositories.SheetsRepo) *Desk {
	return &Desk{
		Aggregator: &Aggregator{Source: repo, SeatCapacity: config.DefaultSeatCapacity, Now: fixedClock},
		Sales:      SaleService{Writer: repo, Now: fixedClock, Rand: func(int) int { return 42 }},
		Tickets:    TicketService{SeatCapacity: config.DefaultSeatCapacity},
	}
}

type storeHandle struct {
	store *sheets.MemoryStore
	repo  repositories.SheetsRepo
}
