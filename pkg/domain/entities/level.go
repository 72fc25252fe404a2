package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LevelRecord is a part's resolved planning record: its low-level code plus
// the Catalog attributes used by the netter.
type LevelRecord struct {
	Part         Part
	LLC          int
	LeadTimeDays int
	PanSize      decimal.Decimal
	ShrinkFactor decimal.Decimal
	EOQ          decimal.Decimal
}

// NewLevelRecord validates and constructs a LevelRecord.
func NewLevelRecord(part Part, llc, leadTimeDays int, panSize, shrinkFactor, eoq decimal.Decimal) (LevelRecord, error) {
	if err := part.Validate(); err != nil {
		return LevelRecord{}, err
	}
	if llc < 0 {
		return LevelRecord{}, fmt.Errorf("llc cannot be negative, got %d", llc)
	}
	if leadTimeDays < 0 {
		return LevelRecord{}, fmt.Errorf("lead time days cannot be negative, got %d", leadTimeDays)
	}
	if panSize.IsNegative() {
		return LevelRecord{}, fmt.Errorf("pan size cannot be negative, got %s", panSize)
	}
	if eoq.IsNegative() {
		return LevelRecord{}, fmt.Errorf("eoq cannot be negative, got %s", eoq)
	}
	if shrinkFactor.IsNegative() || shrinkFactor.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return LevelRecord{}, fmt.Errorf("shrink factor must be in [0, 100), got %s", shrinkFactor)
	}
	return LevelRecord{
		Part:         part,
		LLC:          llc,
		LeadTimeDays: leadTimeDays,
		PanSize:      panSize,
		ShrinkFactor: shrinkFactor,
		EOQ:          eoq,
	}, nil
}
