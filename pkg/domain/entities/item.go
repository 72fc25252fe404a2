package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is an item-master record: the part-level planning attributes the
// Catalog falls back to when no preferred-supplier lead time is recorded.
type Item struct {
	Part         Part
	LeadTimeDays int
	PanSize      decimal.Decimal
	ShrinkFactor decimal.Decimal
	EOQ          decimal.Decimal
}

// NewItem validates and constructs an Item. Unlike LevelRecord, zero values
// are permitted throughout: a missing item master record defaults every
// attribute to pass-through zero per §4.2.
func NewItem(part Part, leadTimeDays int, panSize, shrinkFactor, eoq decimal.Decimal) (Item, error) {
	if err := part.Validate(); err != nil {
		return Item{}, err
	}
	if leadTimeDays < 0 {
		return Item{}, fmt.Errorf("lead time days cannot be negative, got %d", leadTimeDays)
	}
	if panSize.IsNegative() {
		return Item{}, fmt.Errorf("pan size cannot be negative, got %s", panSize)
	}
	if eoq.IsNegative() {
		return Item{}, fmt.Errorf("eoq cannot be negative, got %s", eoq)
	}
	if shrinkFactor.IsNegative() || shrinkFactor.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return Item{}, fmt.Errorf("shrink factor must be in [0, 100), got %s", shrinkFactor)
	}
	return Item{
		Part:         part,
		LeadTimeDays: leadTimeDays,
		PanSize:      panSize,
		ShrinkFactor: shrinkFactor,
		EOQ:          eoq,
	}, nil
}

// PreferredSupplierLeadTime is a preferred-supplier lead time override for a
// part (§4.2: used when present and positive, else falls back to the Item's
// own lead time).
type PreferredSupplierLeadTime struct {
	Part         Part
	LeadTimeDays int
}
