package shared

import (
	"testing"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
)

func TestPartIndex_GetAndAdd(t *testing.T) {
	type row struct {
		part entities.Part
		n    int
	}
	partOf := func(r row) entities.Part { return r.part }

	idx := NewPartIndex([]row{{"A", 1}, {"B", 2}, {"A", 3}}, partOf)

	got := idx.Get("A")
	if len(got) != 2 || got[0].n != 1 || got[1].n != 3 {
		t.Fatalf("expected [1 3] for part A, got %v", got)
	}
	if got := idx.Get("C"); got != nil {
		t.Fatalf("expected nil for absent part, got %v", got)
	}

	idx.Add(row{"C", 4})
	if got := idx.Get("C"); len(got) != 1 || got[0].n != 4 {
		t.Fatalf("expected [4] for part C after Add, got %v", got)
	}
	if idx.Len() != 4 {
		t.Fatalf("expected 4 total records, got %d", idx.Len())
	}
}

func TestPartIndex_Parts(t *testing.T) {
	type row struct{ part entities.Part }
	idx := NewPartIndex([]row{{"A"}, {"B"}, {"A"}}, func(r row) entities.Part { return r.part })

	parts := idx.Parts()
	if len(parts) != 2 {
		t.Fatalf("expected 2 distinct parts, got %d: %v", len(parts), parts)
	}
}
