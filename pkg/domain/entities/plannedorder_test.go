package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewPlannedOrder_Validation(t *testing.T) {
	due := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	valid, err := NewPlannedOrder("PART", due, decimal.NewFromInt(30), SO, "101")
	if err != nil {
		t.Fatalf("expected valid planned order to succeed: %v", err)
	}
	if !valid.Quantity.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected quantity 30, got %s", valid.Quantity)
	}

	testCases := []struct {
		name string
		part Part
		qty  decimal.Decimal
	}{
		{"empty part", "", decimal.NewFromInt(30)},
		{"zero quantity", "PART", decimal.Zero},
		{"negative quantity", "PART", decimal.NewFromInt(-1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlannedOrder(tc.part, due, tc.qty, SO, "101")
			if err == nil {
				t.Fatalf("expected error for %s, got none", tc.name)
			}
		})
	}
}
