package repositories

import (
	"context"

	"pasajes/internal/config"
	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
	"pasajes/internal/sheets"
)

// SheetsRepo reads the six datasets and appends sales and clients.
type SheetsRepo struct {
	Store  sheets.Store
	Sheets config.SheetNames
}

func (r SheetsRepo) read(ctx context.Context, name string) ([]sheets.Record, error) {
	recs, err := r.Store.ReadTable(ctx, name)
	if err != nil {
		return nil, domain.StoreError{Op: "read", Table: name, Err: err}
	}
	return recs, nil
}

func (r SheetsRepo) Company(ctx context.Context) (models.CompanyProfile, error) {
	recs, err := r.read(ctx, r.Sheets.Config)
	if err != nil {
		return models.CompanyProfile{}, err
	}
	return DecodeCompany(recs), nil
}

func (r SheetsRepo) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	recs, err := r.read(ctx, r.Sheets.Vehicles)
	if err != nil {
		return []models.Vehicle{}, err
	}
	return DecodeVehicles(recs), nil
}

func (r SheetsRepo) Routes(ctx context.Context) ([]models.Route, error) {
	recs, err := r.read(ctx, r.Sheets.Routes)
	if err != nil {
		return []models.Route{}, err
	}
	return DecodeRoutes(recs), nil
}

func (r SheetsRepo) Schedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	recs, err := r.read(ctx, r.Sheets.Schedule)
	if err != nil {
		return []models.ScheduleEntry{}, err
	}
	return DecodeSchedule(recs), nil
}

func (r SheetsRepo) Sales(ctx context.Context) ([]models.SaleRecord, error) {
	recs, err := r.read(ctx, r.Sheets.Sales)
	if err != nil {
		return []models.SaleRecord{}, err
	}
	return DecodeSales(recs), nil
}

func (r SheetsRepo) Clients(ctx context.Context) ([]models.Client, error) {
	recs, err := r.read(ctx, r.Sheets.Clients)
	if err != nil {
		return []models.Client{}, err
	}
	return DecodeClients(recs), nil
}

func (r SheetsRepo) AppendSale(ctx context.Context, s models.SaleRecord) error {
	if err := r.Store.AppendRow(ctx, r.Sheets.Sales, SaleRow(s)); err != nil {
		return domain.StoreError{Op: "append", Table: r.Sheets.Sales, Err: err}
	}
	return nil
}

func (r SheetsRepo) AppendClient(ctx context.Context, c models.Client) error {
	if err := r.Store.AppendRow(ctx, r.Sheets.Clients, ClientRow(c)); err != nil {
		return domain.StoreError{Op: "append", Table: r.Sheets.Clients, Err: err}
	}
	return nil
}
