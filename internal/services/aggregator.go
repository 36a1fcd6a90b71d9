package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pasajes/internal/domain/models"
	"pasajes/internal/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("pasajes/internal/services")

// DataSource reads the six datasets. repositories.SheetsRepo implements it.
type DataSource interface {
	Company(ctx context.Context) (models.CompanyProfile, error)
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	Routes(ctx context.Context) ([]models.Route, error)
	Schedule(ctx context.Context) ([]models.ScheduleEntry, error)
	Sales(ctx context.Context) ([]models.SaleRecord, error)
	Clients(ctx context.Context) ([]models.Client, error)
}

// Snapshot is one consistent view of the workbook plus derived trips.
type Snapshot struct {
	Company  models.CompanyProfile
	Vehicles []models.Vehicle
	Routes   []models.Route
	Schedule []models.ScheduleEntry
	Sales    []models.SaleRecord
	Clients  []models.Client
	Trips    []models.Trip
	LoadedAt time.Time
}

func (s Snapshot) Trip(id string) (models.Trip, bool) {
	for _, t := range s.Trips {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trip{}, false
}

func (s Snapshot) Client(taxID string) (models.Client, bool) {
	return findClient(s.Clients, taxID)
}

type LoadResult struct {
	Trips        int      `json:"trips"`
	FailedTables []string `json:"failed_tables,omitempty"`
}

type Aggregator struct {
	Source       DataSource
	SeatCapacity int
	Now          func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Snapshot returns the current snapshot. Slices are shared; callers must not mutate them.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// Clear drops every snapshot, as on sign-out.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	a.snap = Snapshot{}
	a.mu.Unlock()
}

// LoadAll fetches all six tables concurrently. A table that fails to load
// is replaced by an empty one; the rest of the load goes on.
func (a *Aggregator) LoadAll(ctx context.Context) (LoadResult, error) {
	ctx, span := tracer.Start(ctx, "aggregator.load_all")
	defer span.End()

	var (
		next   Snapshot
		mu     sync.Mutex
		failed []string
		g      errgroup.Group
	)
	degrade := func(table string, err error) {
		utils.LogEventCtx(ctx, "", "aggregator", "load_table", fmt.Sprintf("table=%s err=%v", table, err))
		mu.Lock()
		failed = append(failed, table)
		mu.Unlock()
	}

	g.Go(func() error {
		v, err := a.Source.Company(ctx)
		if err != nil {
			degrade("config", err)
			v = models.CompanyProfile{}
		}
		next.Company = v
		return nil
	})
	g.Go(func() error {
		v, err := a.Source.Vehicles(ctx)
		if err != nil {
			degrade("vehicles", err)
			v = []models.Vehicle{}
		}
		next.Vehicles = v
		return nil
	})
	g.Go(func() error {
		v, err := a.Source.Routes(ctx)
		if err != nil {
			degrade("routes", err)
			v = []models.Route{}
		}
		next.Routes = v
		return nil
	})
	g.Go(func() error {
		v, err := a.Source.Schedule(ctx)
		if err != nil {
			degrade("schedule", err)
			v = []models.ScheduleEntry{}
		}
		next.Schedule = v
		return nil
	})
	g.Go(func() error {
		v, err := a.Source.Sales(ctx)
		if err != nil {
			degrade("sales", err)
			v = []models.SaleRecord{}
		}
		next.Sales = v
		return nil
	})
	g.Go(func() error {
		v, err := a.Source.Clients(ctx)
		if err != nil {
			degrade("clients", err)
			v = []models.Client{}
		}
		next.Clients = v
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return LoadResult{}, err
	}

	now := a.now()
	next.Trips = ComputeTrips(next.Schedule, next.Routes, next.Vehicles, now, a.SeatCapacity)
	next.LoadedAt = now

	a.mu.Lock()
	a.snap = next
	a.mu.Unlock()

	span.SetAttributes(
		attribute.Int("trips", len(next.Trips)),
		attribute.Int("failed_tables", len(failed)),
	)
	utils.LogEventCtx(ctx, "", "aggregator", "load_all", fmt.Sprintf("trips=%d failed=%v", len(next.Trips), failed))
	return LoadResult{Trips: len(next.Trips), FailedTables: failed}, nil
}
