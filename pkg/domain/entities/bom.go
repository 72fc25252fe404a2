package entities

import (
	"fmt"
	"time"
)

// BOMEdge is a single parent→child assembly relationship with its quantity-per
// and date effectivity window. All edges, active or not, participate in level
// assignment so that LLCs are stable across time; only active edges are
// considered for dependent-demand explosion.
type BOMEdge struct {
	ParentPart    Part
	ChildPart     Part
	QuantityPer   int64
	EffectiveFrom time.Time
	EffectiveTo   time.Time
}

// NewBOMEdge validates and constructs a BOMEdge.
func NewBOMEdge(parent, child Part, quantityPer int64, effectiveFrom, effectiveTo time.Time) (BOMEdge, error) {
	if err := parent.Validate(); err != nil {
		return BOMEdge{}, fmt.Errorf("parent part: %w", err)
	}
	if err := child.Validate(); err != nil {
		return BOMEdge{}, fmt.Errorf("child part: %w", err)
	}
	if parent == child {
		return BOMEdge{}, fmt.Errorf("parent and child part cannot be the same: %s", parent)
	}
	if quantityPer <= 0 {
		return BOMEdge{}, fmt.Errorf("quantity per must be positive, got %d", quantityPer)
	}
	return BOMEdge{
		ParentPart:    parent,
		ChildPart:     child,
		QuantityPer:   quantityPer,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
	}, nil
}

// IsActive reports whether the edge is effective on the given date:
// effectiveFrom ≤ today < effectiveTo. A zero EffectiveTo is treated as
// open-ended.
func (e BOMEdge) IsActive(today time.Time) bool {
	if today.Before(e.EffectiveFrom) {
		return false
	}
	if e.EffectiveTo.IsZero() {
		return true
	}
	return today.Before(e.EffectiveTo)
}
