package repositories

import (
	"context"
	"errors"
	"testing"

	"pasajes/internal/config"
	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
	"pasajes/internal/sheets"
)

func newRepo() (SheetsRepo, *sheets.MemoryStore) {
	store := sheets.NewMemoryStore()
	return SheetsRepo{Store: store, Sheets: config.DefaultSheetNames()}, store
}

func TestDecodeCompanySkipsIncompleteRows(t *testing.T) {
	repo, store := newRepo()
	store.SetTable("Config", ConfigColumns,
		[]string{"empresa", "Surubí"},
		[]string{"direccion", ""},
		[]string{"", "huérfano"},
	)

	profile, err := repo.Company(context.Background())
	if err != nil {
		t.Fatalf("company error: %v", err)
	}
	if len(profile) != 1 || profile["empresa"] != "Surubí" {
		t.Fatalf("unexpected profile %v", profile)
	}
}

func TestDecodeTypedColumns(t *testing.T) {
	repo, store := newRepo()
	store.SetTable("Vehiculos", VehicleColumns,
		[]string{"V1", "123-ABC", "Toyota", "Hiace", "7", "ACTIVO"},
		[]string{"V2", "999-XYZ"},
	)
	store.SetTable("Rutas", RouteColumns,
		[]string{"R1", "A", "B", "50.5", "2h"},
		[]string{"R2", "A", "C", "gratis"},
	)
	store.SetTable("Ventas", SaleColumns,
		[]string{"BOL-1", "P1", "123", "2", "2026-01-01", "10:00", "50", "CANCELADO"},
	)

	vehicles, err := repo.Vehicles(context.Background())
	if err != nil {
		t.Fatalf("vehicles error: %v", err)
	}
	if vehicles[0].Capacity != 7 || vehicles[1].Capacity != 0 || vehicles[1].Status != "" {
		t.Fatalf("unexpected vehicles %+v", vehicles)
	}

	routes, _ := repo.Routes(context.Background())
	if routes[0].Price != 50.5 || routes[1].Price != 0 {
		t.Fatalf("unexpected route prices %+v", routes)
	}

	sales, _ := repo.Sales(context.Background())
	if !sales[0].Cancelled() || sales[0].UnitPrice != 50 || sales[0].Seat != "2" {
		t.Fatalf("unexpected sale %+v", sales[0])
	}
}

func TestReadFailureIsStoreError(t *testing.T) {
	repo, store := newRepo()
	store.ReadErr["Clientes"] = errors.New("403")

	clients, err := repo.Clients(context.Background())
	if !domain.IsStore(err) {
		t.Fatalf("expected store error, got %v", err)
	}
	if clients == nil || len(clients) != 0 {
		t.Fatalf("failed read should still return an empty slice")
	}
}

func TestAppendsUseFixedColumnOrder(t *testing.T) {
	repo, store := newRepo()
	store.SetTable("Ventas", SaleColumns)
	store.SetTable("Clientes", ClientColumns)

	sale := models.SaleRecord{
		TicketID: "BOL-20260101-0042", TripID: "P1", ClientTaxID: "123", Seat: "4",
		SaleDate: "2026-01-01", SaleTime: "09:30", UnitPrice: 50, Status: domain.StatusActive,
	}
	if err := repo.AppendSale(context.Background(), sale); err != nil {
		t.Fatalf("append sale: %v", err)
	}
	if err := repo.AppendClient(context.Background(), models.Client{TaxID: "123", Name: "Ana", Phone: "7", Email: "a@b"}); err != nil {
		t.Fatalf("append client: %v", err)
	}

	want := []string{"BOL-20260101-0042", "P1", "123", "4", "2026-01-01", "09:30", "50", "ACTIVO"}
	got := store.Rows("Ventas")[0]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sale column %d: got %q want %q", i, got[i], want[i])
		}
	}
	client := store.Rows("Clientes")[0]
	if len(client) != 5 || client[0] != "123" || client[4] != "" {
		t.Fatalf("unexpected client row %v", client)
	}
}

func TestAppendFailureIsStoreError(t *testing.T) {
	repo, store := newRepo()
	store.BeforeAppend = func(string, []any) error { return errors.New("rate limited") }
	err := repo.AppendSale(context.Background(), models.SaleRecord{Seat: "1"})
	var se domain.StoreError
	if !errors.As(err, &se) || se.Op != "append" || se.Table != "Ventas" {
		t.Fatalf("unexpected error %v", err)
	}
}
