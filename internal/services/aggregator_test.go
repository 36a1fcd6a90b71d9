package services

import (
	"context"
	"errors"
	"testing"

	"pasajes/internal/config"
)

func TestLoadAllBuildsSnapshot(t *testing.T) {
	_, repo := newWorkbook()
	agg := &Aggregator{Source: repo, SeatCapacity: config.DefaultSeatCapacity, Now: fixedClock}

	res, err := agg.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if res.Trips != 2 || len(res.FailedTables) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}

	snap := agg.Snapshot()
	if snap.Company.Name() != "Surubí Tours" {
		t.Fatalf("company not loaded: %v", snap.Company)
	}
	if len(snap.Sales) != 3 || len(snap.Clients) != 1 || len(snap.Routes) != 1 {
		t.Fatalf("tables not loaded: %+v", snap)
	}
	p2, ok := snap.Trip("P2")
	if !ok || p2.Capacity != config.DefaultSeatCapacity || p2.Driver != "N/A" {
		t.Fatalf("P2 should fall back to the default capacity and N/A driver: %+v", p2)
	}
	if _, ok := snap.Trip("P3"); ok {
		t.Fatalf("past trip P3 listed")
	}
	if !snap.LoadedAt.Equal(fixedNow) {
		t.Fatalf("LoadedAt = %v", snap.LoadedAt)
	}
}

func TestLoadAllDegradesFailedTable(t *testing.T) {
	store, repo := newWorkbook()
	store.ReadErr[repo.Sheets.Routes] = errors.New("quota")
	agg := &Aggregator{Source: repo, SeatCapacity: 7, Now: fixedClock}

	res, err := agg.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("a single failed table must not fail the load: %v", err)
	}
	if len(res.FailedTables) != 1 || res.FailedTables[0] != "routes" {
		t.Fatalf("unexpected failed tables %v", res.FailedTables)
	}
	snap := agg.Snapshot()
	if snap.Routes == nil || len(snap.Routes) != 0 {
		t.Fatalf("failed table should be empty, got %v", snap.Routes)
	}
	if res.Trips != 2 {
		t.Fatalf("trips still come from schedule, got %d", res.Trips)
	}
	if tr, _ := snap.Trip("P1"); tr.Origin != "N/A" || tr.Price != 0 {
		t.Fatalf("missing route should use placeholders: %+v", tr)
	}
}

func TestLoadAllCancelled(t *testing.T) {
	_, repo := newWorkbook()
	agg := &Aggregator{Source: repo, SeatCapacity: 7, Now: fixedClock}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := agg.LoadAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(agg.Snapshot().Trips) != 0 {
		t.Fatalf("cancelled load must not replace the snapshot")
	}
}

func TestClear(t *testing.T) {
	_, repo := newWorkbook()
	agg := &Aggregator{Source: repo, SeatCapacity: 7, Now: fixedClock}
	if _, err := agg.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	agg.Clear()
	if snap := agg.Snapshot(); len(snap.Trips) != 0 || len(snap.Sales) != 0 {
		t.Fatalf("Clear left data: %+v", snap)
	}
}
