package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DemandType classifies the source of a Requirement.
type DemandType int

const (
	SO DemandType = iota
	WO
	MRPD
	REORD
)

// String implements fmt.Stringer for DemandType.
func (d DemandType) String() string {
	switch d {
	case SO:
		return "SO"
	case WO:
		return "WO"
	case MRPD:
		return "MRPD"
	case REORD:
		return "REORD"
	default:
		return "Unknown"
	}
}

// Requirement is a single demand row against a part, belonging to the
// current Run's working set. Quantity is consumed downward during netting
// and may reach zero.
type Requirement struct {
	Part          Part
	DateRequired  time.Time
	Quantity      decimal.Decimal
	DemandType    DemandType
	OrderNo       string
	DirectDemand  bool
	WhereRequired Part
}

// NewRequirement validates and constructs a Requirement. quantity must be
// strictly positive at insertion time.
func NewRequirement(part Part, dateRequired time.Time, quantity decimal.Decimal, demandType DemandType, orderNo string, directDemand bool, whereRequired Part) (Requirement, error) {
	if err := part.Validate(); err != nil {
		return Requirement{}, err
	}
	if !quantity.IsPositive() {
		return Requirement{}, fmt.Errorf("requirement quantity must be positive, got %s", quantity)
	}
	if err := whereRequired.Validate(); err != nil {
		return Requirement{}, fmt.Errorf("where required: %w", err)
	}
	return Requirement{
		Part:          part,
		DateRequired:  dateRequired,
		Quantity:      quantity,
		DemandType:    demandType,
		OrderNo:       orderNo,
		DirectDemand:  directDemand,
		WhereRequired: whereRequired,
	}, nil
}
