package memory

import (
	"context"
	"testing"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/shopspring/decimal"
)

func TestStore_LocationFilterDisabledWhenEmpty(t *testing.T) {
	s := NewStore()
	s.AddLocationStock(entities.LocationStock{Part: "A", Location: "WH1", OnHand: decimal.NewFromInt(10)})
	s.AddLocationStock(entities.LocationStock{Part: "A", Location: "WH2", OnHand: decimal.NewFromInt(5)})

	got, err := s.GetLocationStock(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both locations with no filter, got %d", len(got))
	}
}

func TestStore_LocationFilterRestricts(t *testing.T) {
	s := NewStore()
	s.AddLocationStock(entities.LocationStock{Part: "A", Location: "WH1", OnHand: decimal.NewFromInt(10)})
	s.AddLocationStock(entities.LocationStock{Part: "A", Location: "WH2", OnHand: decimal.NewFromInt(5)})

	got, err := s.GetLocationStock(context.Background(), repositories.LocationFilter{"WH1": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Location != "WH1" {
		t.Fatalf("expected only WH1, got %v", got)
	}
}

func TestStore_IssuedStockMovesCachedPerWO(t *testing.T) {
	s := NewStore()
	s.AddIssuedStockMove(entities.IssuedStockMove{WONo: "WO1", ComponentPart: "B", QtyIssued: decimal.NewFromInt(3)})
	s.AddIssuedStockMove(entities.IssuedStockMove{WONo: "WO2", ComponentPart: "B", QtyIssued: decimal.NewFromInt(7)})

	got, err := s.GetIssuedStockMovesForWO(context.Background(), "WO1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !got[0].QtyIssued.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("expected only WO1's move, got %v", got)
	}
}

func TestStore_GetBOMEdgesReturnsCopy(t *testing.T) {
	s := NewStore()
	edge, err := entities.NewBOMEdge("A", "B", 2, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.AddBOMEdge(edge)

	got, err := s.GetBOMEdges(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got[0].QuantityPer = 99

	again, err := s.GetBOMEdges(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0].QuantityPer != 2 {
		t.Fatalf("mutating a returned slice must not affect the store, got %d", again[0].QuantityPer)
	}
}
