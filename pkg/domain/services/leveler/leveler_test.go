package leveler

import (
	"testing"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/mrperr"
)

func mustEdge(t *testing.T, parent, child entities.Part, qty int64) entities.BOMEdge {
	t.Helper()
	e, err := entities.NewBOMEdge(parent, child, qty, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error building edge: %v", err)
	}
	return e
}

func TestAssignLevels_SingleLevel(t *testing.T) {
	llc, err := AssignLevels(nil, []entities.Part{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if llc["A"] != 0 {
		t.Errorf("expected unreferenced part at llc 0, got %d", llc["A"])
	}
}

func TestAssignLevels_TwoLevel(t *testing.T) {
	edges := []entities.BOMEdge{mustEdge(t, "A", "B", 2)}
	llc, err := AssignLevels(edges, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if llc["A"] != 0 {
		t.Errorf("expected A at llc 0, got %d", llc["A"])
	}
	if llc["B"] != 1 {
		t.Errorf("expected B at llc 1, got %d", llc["B"])
	}
}

func TestAssignLevels_DiamondTakesLongestPath(t *testing.T) {
	// A -> B -> D, A -> C -> ... -> D (longer path), D's llc must be the max.
	edges := []entities.BOMEdge{
		mustEdge(t, "A", "B", 1),
		mustEdge(t, "B", "D", 1),
		mustEdge(t, "A", "C", 1),
		mustEdge(t, "C", "E", 1),
		mustEdge(t, "E", "D", 1),
	}
	llc, err := AssignLevels(edges, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if llc["D"] != 3 {
		t.Errorf("expected D at llc 3 (longest path through C->E->D), got %d", llc["D"])
	}
}

func TestAssignLevels_DetectsCycle(t *testing.T) {
	edges := []entities.BOMEdge{
		mustEdge(t, "A", "B", 1),
		mustEdge(t, "B", "C", 1),
		mustEdge(t, "C", "A", 1),
	}
	_, err := AssignLevels(edges, nil)
	if err == nil {
		t.Fatal("expected cyclic BOM error")
	}
	var cyclic *mrperr.CyclicBOMError
	if !asCyclicBOMError(err, &cyclic) {
		t.Fatalf("expected *mrperr.CyclicBOMError, got %T: %v", err, err)
	}
	if len(cyclic.Witness) < 2 {
		t.Errorf("expected a non-trivial witness path, got %v", cyclic.Witness)
	}
}

func asCyclicBOMError(err error, target **mrperr.CyclicBOMError) bool {
	cyclic, ok := err.(*mrperr.CyclicBOMError)
	if ok {
		*target = cyclic
	}
	return ok
}

func TestPartsByLevel_SortsAscending(t *testing.T) {
	llc := map[entities.Part]int{"B": 0, "A": 0, "C": 1}
	byLevel := PartsByLevel(llc)
	if got := byLevel[0]; len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("expected [A B] at level 0, got %v", got)
	}
}

func TestMaxLevel(t *testing.T) {
	if got := MaxLevel(map[entities.Part]int{"A": 2, "B": 0}); got != 2 {
		t.Errorf("expected max level 2, got %d", got)
	}
	if got := MaxLevel(map[entities.Part]int{}); got != -1 {
		t.Errorf("expected -1 for empty map, got %d", got)
	}
}
