// Package netter implements the engine's core loop (§4.5): time-phased
// netting, lot sizing, due-date offset, and dependent-demand explosion, one
// level at a time from LLC zero (top assemblies) down to the deepest LLC.
package netter

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/application/services/catalog"
	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/mrperr"
	"github.com/devkrishnan/mrpnet/pkg/domain/services/effectivity"
	"github.com/devkrishnan/mrpnet/pkg/domain/services/leveler"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Result is everything the netter produced for a run: the emitted planned
// orders, the final state of the working sets, and per-part advisory
// reschedule counts for the Summary (§12 supplemented feature).
type Result struct {
	PlannedOrders     []entities.PlannedOrder
	Requirements      []entities.Requirement
	Supplies          []entities.Supply
	RescheduleCounts  map[entities.Part]int
	GrossRequirements map[entities.Part]decimal.Decimal
}

// Netter runs the per-part netting algorithm in strict level order.
type Netter struct {
	catalog     *catalog.Catalog
	bomEdges    []entities.BOMEdge
	resolver    *effectivity.Resolver
	today       time.Time
	config      entities.Config
	maxParallel int
}

// New constructs a Netter. today is the date used to resolve BOM edge
// effectivity for dependent-demand explosion.
func New(cat *catalog.Catalog, bomEdges []entities.BOMEdge, today time.Time, config entities.Config) *Netter {
	maxParallel := runtime.GOMAXPROCS(0)
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Netter{
		catalog:     cat,
		bomEdges:    bomEdges,
		resolver:    effectivity.NewResolver(),
		today:       today,
		config:      config,
		maxParallel: maxParallel,
	}
}

// Run nets every part level by level, from LLC zero up to the highest LLC,
// so a part is netted only after all its parents (which sit at lower LLCs)
// have exploded their planned orders into it. Ordering across levels is
// strict; within a level, parts are independent and are netted
// concurrently bounded by maxParallel (§5), with explosion writes serialised
// through the working set's single-writer sink. The context is checked
// between levels and between parts within a level; cancellation aborts the
// run with mrperr.CancelledError.
func (n *Netter) Run(ctx context.Context, llc map[entities.Part]int, requirements []entities.Requirement, supplies []entities.Supply) (*Result, error) {
	ws := newWorkingSet(requirements, supplies)
	byLevel := leveler.PartsByLevel(llc)
	maxLevel := leveler.MaxLevel(llc)

	var plannedOrdersMu sync.Mutex
	var plannedOrders []entities.PlannedOrder
	rescheduleCounts := make(map[entities.Part]int)
	var rescheduleMu sync.Mutex
	grossRequirements := make(map[entities.Part]decimal.Decimal)
	var grossMu sync.Mutex

	for level := 0; level <= maxLevel; level++ {
		if err := ctx.Err(); err != nil {
			return nil, &mrperr.CancelledError{}
		}

		parts := byLevel[level]
		group, gctx := errgroup.WithContext(ctx)
		group.SetLimit(n.maxParallel)

		for _, part := range parts {
			part := part
			group.Go(func() error {
				if err := gctx.Err(); err != nil {
					return &mrperr.CancelledError{}
				}
				orders, rescheduled, gross, err := n.netPart(part, ws)
				if err != nil {
					return err
				}
				if len(orders) > 0 {
					plannedOrdersMu.Lock()
					plannedOrders = append(plannedOrders, orders...)
					plannedOrdersMu.Unlock()
				}
				if rescheduled > 0 {
					rescheduleMu.Lock()
					rescheduleCounts[part] += rescheduled
					rescheduleMu.Unlock()
				}
				grossMu.Lock()
				grossRequirements[part] = grossRequirements[part].Add(gross)
				grossMu.Unlock()
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			return nil, err
		}
	}

	return &Result{
		PlannedOrders:     plannedOrders,
		Requirements:      ws.allRequirements(),
		Supplies:          ws.allSupplies(),
		RescheduleCounts:  rescheduleCounts,
		GrossRequirements: grossRequirements,
	}, nil
}

// netPart runs the per-part netting algorithm of §4.5.1 for a single part:
// allocation, lot sizing with shrink/EOQ/pan, due-date offset, planned-order
// emission, and dependent-demand explosion. It returns the planned orders
// emitted for part, the number of supplies advisory-rescheduled, and the
// part's gross requirement total (direct plus dependent demand, summed
// before allocate consumes it against supply).
func (n *Netter) netPart(part entities.Part, ws *workingSet) ([]entities.PlannedOrder, int, decimal.Decimal, error) {
	reqs := ws.requirementsFor(part)
	sups := ws.suppliesFor(part)

	gross := decimal.Zero
	for _, req := range reqs {
		gross = gross.Add(req.Quantity)
	}

	rescheduled := n.allocate(reqs, sups)

	item := n.catalog.Get(part)
	var orders []entities.PlannedOrder
	carry := decimal.Zero

	for _, req := range reqs {
		if !req.Quantity.IsPositive() {
			continue
		}

		needed := req.Quantity
		if n.config.UseShrinkage && item.ShrinkFactor.IsPositive() && item.ShrinkFactor.LessThan(decimal.NewFromInt(100)) {
			hundred := decimal.NewFromInt(100)
			needed = needed.Mul(hundred).Div(hundred.Sub(item.ShrinkFactor)).Round(2)
		}

		var planQty decimal.Decimal
		if carry.GreaterThanOrEqual(needed) {
			carry = carry.Sub(needed)
			continue
		}
		planQty = needed.Sub(carry)
		carry = decimal.Zero

		if n.config.UseEOQ && item.EOQ.GreaterThan(planQty) {
			carry = item.EOQ.Sub(planQty)
			planQty = item.EOQ
		}

		if n.config.UsePanSize && item.PanSize.IsPositive() {
			quotient := planQty.Div(item.PanSize)
			planQty = quotient.Ceil().Mul(item.PanSize)
		}

		dueDate := offsetDays(req.DateRequired, -item.LeadTimeDays)

		order, err := entities.NewPlannedOrder(part, dueDate, planQty, req.DemandType, req.OrderNo)
		if err != nil {
			return nil, rescheduled, gross, &mrperr.InternalInvariantViolationError{What: err.Error()}
		}
		orders = append(orders, order)

		if err := n.explode(part, dueDate, planQty, req, ws); err != nil {
			return nil, rescheduled, gross, err
		}
	}

	return orders, rescheduled, gross, nil
}

// allocate walks requirements and supplies (both sorted ascending by date)
// in lockstep, consuming supply against requirement and advisory-rescheduling
// late supplies, per §4.5.1 step 1. It returns the number of supplies
// rescheduled.
func (n *Netter) allocate(reqs []*entities.Requirement, sups []*entities.Supply) int {
	rescheduled := 0
	r, s := 0, 0

	for r < len(reqs) && s < len(sups) {
		req := reqs[r]
		sup := sups[s]

		if !req.Quantity.IsPositive() {
			r++
			continue
		}
		if !sup.SupplyQty.IsPositive() {
			s++
			continue
		}

		threshold := offsetDays(req.DateRequired, n.config.LeewayDays)
		if sup.DueDate.After(threshold) {
			before := sup.MRPDate.Equal(sup.DueDate)
			sup.AdviseReschedule(req.DateRequired)
			if before && sup.UpdateFlag {
				rescheduled++
			}
		}

		switch {
		case req.Quantity.GreaterThan(sup.SupplyQty):
			req.Quantity = req.Quantity.Sub(sup.SupplyQty)
			sup.SupplyQty = decimal.Zero
			s++
		case req.Quantity.LessThan(sup.SupplyQty):
			sup.SupplyQty = sup.SupplyQty.Sub(req.Quantity)
			req.Quantity = decimal.Zero
			r++
		default:
			req.Quantity = decimal.Zero
			sup.SupplyQty = decimal.Zero
			r++
			s++
		}
	}

	return rescheduled
}

// explode injects dependent-demand requirements into the child parts of
// part for every active BOM edge, per §4.5.1 step 6. The child's dateRequired
// is the parent's planned due date, unmodified: the child's own lead time is
// applied exactly once, when that child is later netted at its own level
// (step 4's due-date offset), not again here.
func (n *Netter) explode(part entities.Part, dueDate time.Time, planQty decimal.Decimal, parentReq *entities.Requirement, ws *workingSet) error {
	children := n.resolver.ActiveChildren(n.today, part, n.bomEdges)
	for _, edge := range children {
		childQty := planQty.Mul(decimal.NewFromInt(edge.QuantityPer))

		childReq, err := entities.NewRequirement(edge.ChildPart, dueDate, childQty, parentReq.DemandType, parentReq.OrderNo, false, part)
		if err != nil {
			return &mrperr.InternalInvariantViolationError{What: err.Error()}
		}
		ws.addRequirement(childReq)
	}
	return nil
}

// offsetDays adds days calendar days to t, per §9's calendar note: plain
// calendar-day arithmetic, no business-calendar logic.
func offsetDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
