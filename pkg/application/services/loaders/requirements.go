// Package loaders populates a run's working Requirements and Supplies sets
// from the storage adapter's read side (§4.3, §4.4).
package loaders

import (
	"context"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
)

// RequirementsLoader populates Requirements from sales orders, open
// work-order component needs, optional MRP demand records, and optional
// reorder-point top-ups (§4.3).
type RequirementsLoader struct {
	today  time.Time
	config entities.Config
}

// NewRequirementsLoader constructs a RequirementsLoader for the given run
// date and configuration.
func NewRequirementsLoader(today time.Time, config entities.Config) *RequirementsLoader {
	return &RequirementsLoader{today: today, config: config}
}

// Load reads every configured demand source and returns the resulting
// direct-demand Requirement rows. whereRequired is the part itself for
// every row here, since direct demand is self-sourced (§4.3).
func (l *RequirementsLoader) Load(ctx context.Context, reader repositories.SourceReader) ([]entities.Requirement, error) {
	var requirements []entities.Requirement

	salesOrders, err := reader.GetOpenSalesOrders(ctx)
	if err != nil {
		return nil, err
	}
	for _, so := range salesOrders {
		qty := so.OrderedQty.Sub(so.InvoicedQty)
		if !qty.IsPositive() {
			continue
		}
		req, err := entities.NewRequirement(so.Part, so.DueDate, qty, entities.SO, so.OrderNo, true, so.Part)
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, req)
	}

	woReqs, err := l.loadWorkOrderComponentNeeds(ctx, reader)
	if err != nil {
		return nil, err
	}
	requirements = append(requirements, woReqs...)

	if l.config.UseMrpDemands {
		demands, err := reader.GetMRPDemands(ctx)
		if err != nil {
			return nil, err
		}
		for _, d := range demands {
			if !d.Quantity.IsPositive() {
				continue
			}
			req, err := entities.NewRequirement(d.Part, d.DateRequired, d.Quantity, entities.MRPD, d.OrderNo, true, d.Part)
			if err != nil {
				return nil, err
			}
			requirements = append(requirements, req)
		}
	}

	if l.config.UseReorderLevelDemands {
		reorderReqs, err := l.loadReorderGaps(ctx, reader)
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, reorderReqs...)
	}

	return requirements, nil
}

// loadWorkOrderComponentNeeds nets each component line's gross need
// (qtyPerUnit·qtyReqd) against stock already issued to that work order.
func (l *RequirementsLoader) loadWorkOrderComponentNeeds(ctx context.Context, reader repositories.SourceReader) ([]entities.Requirement, error) {
	workOrders, err := reader.GetOpenWorkOrders(ctx)
	if err != nil {
		return nil, err
	}

	issuedCache := make(map[string][]entities.IssuedStockMove)
	issuedFor := func(wo string) ([]entities.IssuedStockMove, error) {
		if moves, ok := issuedCache[wo]; ok {
			return moves, nil
		}
		moves, err := reader.GetIssuedStockMovesForWO(ctx, wo)
		if err != nil {
			return nil, err
		}
		issuedCache[wo] = moves
		return moves, nil
	}

	var requirements []entities.Requirement
	for _, wo := range workOrders {
		moves, err := issuedFor(wo.WONo)
		if err != nil {
			return nil, err
		}
		var issued = zero()
		for _, m := range moves {
			if m.ComponentPart == wo.ComponentPart {
				issued = issued.Add(m.QtyIssued)
			}
		}

		needed := wo.QtyPerUnit.Mul(wo.OutputQtyReqd).Sub(issued)
		if !needed.IsPositive() {
			continue
		}
		req, err := entities.NewRequirement(wo.ComponentPart, wo.RequiredBy, needed, entities.WO, wo.WONo, true, wo.ComponentPart)
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, req)
	}
	return requirements, nil
}

// loadReorderGaps emits one REORD requirement per location record whose
// on-hand balance has fallen below its reorder point.
func (l *RequirementsLoader) loadReorderGaps(ctx context.Context, reader repositories.SourceReader) ([]entities.Requirement, error) {
	filter := locationFilter(l.config)
	stock, err := reader.GetLocationStock(ctx, filter)
	if err != nil {
		return nil, err
	}

	var requirements []entities.Requirement
	for _, s := range stock {
		gap := s.ReorderLevel.Sub(s.OnHand)
		if !gap.IsPositive() {
			continue
		}
		req, err := entities.NewRequirement(s.Part, l.today, gap, entities.REORD, "", true, s.Part)
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, req)
	}
	return requirements, nil
}
