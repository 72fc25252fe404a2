package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewSupply_Validation(t *testing.T) {
	due := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	qty := decimal.NewFromInt(50)

	valid, err := NewSupply("500", "PART", due, qty, PO, "500")
	if err != nil {
		t.Fatalf("expected valid supply to succeed: %v", err)
	}
	if !valid.MRPDate.Equal(due) {
		t.Errorf("expected mrpDate to initialise equal to dueDate")
	}
	if valid.UpdateFlag {
		t.Errorf("expected updateFlag false on insertion")
	}

	testCases := []struct {
		name string
		id   string
		part Part
		qty  decimal.Decimal
	}{
		{"empty id", "", "PART", qty},
		{"empty part", "500", "", qty},
		{"zero quantity", "500", "PART", decimal.Zero},
		{"negative quantity", "500", "PART", decimal.NewFromInt(-1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSupply(tc.id, tc.part, due, tc.qty, PO, "500")
			if err == nil {
				t.Fatalf("expected error for %s, got none", tc.name)
			}
		})
	}
}

func TestSupply_AdviseReschedule(t *testing.T) {
	due := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	needed := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	s, err := NewSupply("500", "PART", due, decimal.NewFromInt(50), PO, "500")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.AdviseReschedule(needed)
	if !s.MRPDate.Equal(needed) {
		t.Errorf("expected mrpDate %v, got %v", needed, s.MRPDate)
	}
	if !s.DueDate.Equal(due) {
		t.Errorf("expected physical dueDate unchanged, got %v", s.DueDate)
	}
	if !s.UpdateFlag {
		t.Errorf("expected updateFlag set after reschedule")
	}

	earlier := needed.AddDate(0, 0, -1)
	s.AdviseReschedule(earlier)
	if s.MRPDate.Equal(earlier) {
		t.Errorf("expected reschedule to fire at most once, mrpDate changed again to %v", s.MRPDate)
	}
}
