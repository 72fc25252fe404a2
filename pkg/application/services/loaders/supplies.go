package loaders

import (
	"context"
	"fmt"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/shopspring/decimal"
)

// SuppliesLoader populates Supplies from open purchase orders, on-hand
// inventory (bucketed at the past-due sentinel), and open work-order
// receipts (§4.4).
type SuppliesLoader struct {
	config entities.Config
}

// NewSuppliesLoader constructs a SuppliesLoader for the given configuration.
func NewSuppliesLoader(config entities.Config) *SuppliesLoader {
	return &SuppliesLoader{config: config}
}

// Load reads every supply source and returns the resulting Supply rows,
// each with mrpDate initialised equal to dueDate and updateFlag=0.
func (l *SuppliesLoader) Load(ctx context.Context, reader repositories.SourceReader) ([]entities.Supply, error) {
	var supplies []entities.Supply

	purchaseOrders, err := reader.GetOpenPurchaseOrders(ctx)
	if err != nil {
		return nil, err
	}
	for _, po := range purchaseOrders {
		qty := po.OrderedQty.Sub(po.ReceivedQty)
		if !qty.IsPositive() {
			continue
		}
		s, err := entities.NewSupply(supplyID("PO", po.OrderNo, po.Part), po.Part, po.DueDate, qty, entities.PO, po.OrderNo)
		if err != nil {
			return nil, err
		}
		supplies = append(supplies, s)
	}

	qohSupplies, err := l.loadOnHand(ctx, reader)
	if err != nil {
		return nil, err
	}
	supplies = append(supplies, qohSupplies...)

	workOrders, err := reader.GetOpenWorkOrders(ctx)
	if err != nil {
		return nil, err
	}
	seenWO := make(map[string]bool)
	for _, wo := range workOrders {
		if seenWO[wo.WONo] {
			continue
		}
		seenWO[wo.WONo] = true

		qty := wo.OutputQtyReqd.Sub(wo.OutputReceived)
		if !qty.IsPositive() {
			continue
		}
		s, err := entities.NewSupply(supplyID("WO", wo.WONo, wo.OutputPart), wo.OutputPart, wo.RequiredBy, qty, entities.WOReceipt, wo.WONo)
		if err != nil {
			return nil, err
		}
		supplies = append(supplies, s)
	}

	return supplies, nil
}

// loadOnHand sums positive stock moves per part into one QOH supply per
// part, aggregating across every location the configured filter lets
// through; with filtering disabled that is all locations (the resolved
// reading of §9's open question).
func (l *SuppliesLoader) loadOnHand(ctx context.Context, reader repositories.SourceReader) ([]entities.Supply, error) {
	filter := locationFilter(l.config)
	moves, err := reader.GetPositiveStockMoves(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := make(map[entities.Part]decimal.Decimal)
	order := make([]entities.Part, 0)
	for _, m := range moves {
		if _, ok := totals[m.Part]; !ok {
			order = append(order, m.Part)
		}
		totals[m.Part] = totals[m.Part].Add(m.Quantity)
	}

	var supplies []entities.Supply
	for _, part := range order {
		total := totals[part]
		if !total.IsPositive() {
			continue
		}
		s, err := entities.NewSupply(supplyID("QOH", "", part), part, entities.PastDueSentinel, total, entities.QOH, "")
		if err != nil {
			return nil, err
		}
		supplies = append(supplies, s)
	}
	return supplies, nil
}

func supplyID(kind, orderNo string, part entities.Part) string {
	if orderNo == "" {
		return fmt.Sprintf("%s|%s", kind, part)
	}
	return fmt.Sprintf("%s|%s|%s", kind, orderNo, part)
}
