package memdb

import (
	"context"
	"testing"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/shopspring/decimal"
)

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	runID := "run-1"

	if err := s.CreateRun(ctx, runID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := entities.NewRequirement("A", time.Now(), decimal.NewFromInt(10), entities.SO, "100", true, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.WriteRequirements(ctx, runID, []entities.Requirement{req}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.ReadRequirements(ctx, runID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Part != "A" {
		t.Fatalf("expected 1 requirement for part A, got %+v", got)
	}
}

func TestStore_ClearRunRemovesEverything(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	runID := "run-2"

	if err := s.CreateRun(ctx, runID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, err := entities.NewPlannedOrder("A", time.Now(), decimal.NewFromInt(5), entities.SO, "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.WritePlannedOrders(ctx, runID, []entities.PlannedOrder{order}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.ClearRun(ctx, runID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.ReadPlannedOrders(ctx, runID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no planned orders after ClearRun, got %d", len(got))
	}
}

func TestStore_RunsAreIsolated(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	req, err := entities.NewRequirement("A", time.Now(), decimal.NewFromInt(1), entities.SO, "1", true, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.WriteRequirements(ctx, "run-a", []entities.Requirement{req}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.ReadRequirements(ctx, "run-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected run-b to see no rows written under run-a, got %d", len(got))
	}
}
