package entities

import (
	"testing"
	"time"
)

func TestNewBOMEdge_Validation(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	valid, err := NewBOMEdge("PARENT", "CHILD", 2, from, time.Time{})
	if err != nil {
		t.Fatalf("expected valid edge to succeed: %v", err)
	}
	if valid.QuantityPer != 2 {
		t.Errorf("expected quantity per 2, got %d", valid.QuantityPer)
	}

	testCases := []struct {
		name   string
		parent Part
		child  Part
		qty    int64
	}{
		{"empty parent", "", "CHILD", 1},
		{"empty child", "PARENT", "", 1},
		{"parent equals child", "SAME", "SAME", 1},
		{"zero quantity", "PARENT", "CHILD", 0},
		{"negative quantity", "PARENT", "CHILD", -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBOMEdge(tc.parent, tc.child, tc.qty, from, time.Time{})
			if err == nil {
				t.Fatalf("expected error for %s, got none", tc.name)
			}
		})
	}
}

func TestBOMEdge_IsActive(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	edge, err := NewBOMEdge("PARENT", "CHILD", 1, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testCases := []struct {
		name   string
		today  time.Time
		active bool
	}{
		{"before window", from.AddDate(0, 0, -1), false},
		{"at start", from, true},
		{"inside window", from.AddDate(0, 1, 0), true},
		{"at end (exclusive)", to, false},
		{"after window", to.AddDate(0, 1, 0), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := edge.IsActive(tc.today); got != tc.active {
				t.Errorf("IsActive(%v) = %v, want %v", tc.today, got, tc.active)
			}
		})
	}

	openEnded, err := NewBOMEdge("PARENT", "CHILD", 1, from, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !openEnded.IsActive(from.AddDate(10, 0, 0)) {
		t.Errorf("expected open-ended edge to stay active far in the future")
	}
}
