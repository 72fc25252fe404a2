package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PlannedOrder is an engine-emitted advisory replenishment order that closes
// a net shortfall. Planned orders feed the next-level requirements; they are
// never consumed as supply in the same run.
type PlannedOrder struct {
	Part             Part
	DueDate          time.Time
	Quantity         decimal.Decimal
	SourceDemandType DemandType
	SourceOrderNo    string
}

// NewPlannedOrder validates and constructs a PlannedOrder.
func NewPlannedOrder(part Part, dueDate time.Time, quantity decimal.Decimal, sourceDemandType DemandType, sourceOrderNo string) (PlannedOrder, error) {
	if err := part.Validate(); err != nil {
		return PlannedOrder{}, err
	}
	if !quantity.IsPositive() {
		return PlannedOrder{}, fmt.Errorf("planned order quantity must be positive, got %s", quantity)
	}
	return PlannedOrder{
		Part:             part,
		DueDate:          dueDate,
		Quantity:         quantity,
		SourceDemandType: sourceDemandType,
		SourceOrderNo:    sourceOrderNo,
	}, nil
}
