package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderType classifies the source of a Supply.
type OrderType int

const (
	PO OrderType = iota
	WOReceipt
	QOH
)

// String implements fmt.Stringer for OrderType.
func (o OrderType) String() string {
	switch o {
	case PO:
		return "PO"
	case WOReceipt:
		return "WO"
	case QOH:
		return "QOH"
	default:
		return "Unknown"
	}
}

// PastDueSentinel is the due date assigned to on-hand (QOH) supplies so that
// they sort ahead of every dated supply and are consumed first.
var PastDueSentinel = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)

// Supply is a single supply row against a part, belonging to the current
// Run's working set.
type Supply struct {
	ID         string
	Part       Part
	DueDate    time.Time
	SupplyQty  decimal.Decimal
	OrderType  OrderType
	OrderNo    string
	MRPDate    time.Time
	UpdateFlag bool
}

// NewSupply validates and constructs a Supply. supplyQty must be strictly
// positive at insertion time. mrpDate is initialised equal to dueDate per §4.4.
func NewSupply(id string, part Part, dueDate time.Time, supplyQty decimal.Decimal, orderType OrderType, orderNo string) (Supply, error) {
	if err := part.Validate(); err != nil {
		return Supply{}, err
	}
	if id == "" {
		return Supply{}, fmt.Errorf("supply id cannot be empty")
	}
	if !supplyQty.IsPositive() {
		return Supply{}, fmt.Errorf("supply quantity must be positive, got %s", supplyQty)
	}
	return Supply{
		ID:         id,
		Part:       part,
		DueDate:    dueDate,
		SupplyQty:  supplyQty,
		OrderType:  orderType,
		OrderNo:    orderNo,
		MRPDate:    dueDate,
		UpdateFlag: false,
	}, nil
}

// AdviseReschedule records an advisory mrpDate shift without touching the
// physical dueDate. It only fires while mrpDate == dueDate so each supply is
// advised at most once, per §4.5.1.
func (s *Supply) AdviseReschedule(newDate time.Time) {
	if !s.MRPDate.Equal(s.DueDate) {
		return
	}
	s.MRPDate = newDate
	s.UpdateFlag = true
}
