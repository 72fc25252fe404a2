package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewLevelRecord_Validation(t *testing.T) {
	zero := decimal.Zero
	ten := decimal.NewFromInt(10)

	valid, err := NewLevelRecord("PART", 2, 5, ten, zero, zero)
	if err != nil {
		t.Fatalf("expected valid level record to succeed: %v", err)
	}
	if valid.LLC != 2 {
		t.Errorf("expected llc 2, got %d", valid.LLC)
	}

	testCases := []struct {
		name         string
		llc          int
		leadTime     int
		panSize      decimal.Decimal
		shrinkFactor decimal.Decimal
		eoq          decimal.Decimal
	}{
		{"negative llc", -1, 5, ten, zero, zero},
		{"negative lead time", 2, -1, ten, zero, zero},
		{"negative pan size", 2, 5, decimal.NewFromInt(-1), zero, zero},
		{"negative eoq", 2, 5, ten, zero, decimal.NewFromInt(-1)},
		{"shrink factor at 100", 2, 5, ten, decimal.NewFromInt(100), zero},
		{"negative shrink factor", 2, 5, ten, decimal.NewFromInt(-1), zero},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLevelRecord("PART", tc.llc, tc.leadTime, tc.panSize, tc.shrinkFactor, tc.eoq)
			if err == nil {
				t.Fatalf("expected error for %s, got none", tc.name)
			}
		})
	}
}
