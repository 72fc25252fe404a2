// Package orchestrator drives a single end-to-end run: load the working
// set from the storage adapter's read side, assign levels, net every part,
// and summarize the result, the way
// pkg/application/services/orchestration.PlanningOrchestrator sequences the
// teacher's MRP and critical-path services into one call.
package orchestrator

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/application/services/catalog"
	"github.com/devkrishnan/mrpnet/pkg/application/services/loaders"
	"github.com/devkrishnan/mrpnet/pkg/application/services/netter"
	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/mrperr"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/devkrishnan/mrpnet/pkg/domain/services/leveler"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Orchestrator owns a single in-flight run at a time (§3: a Run exclusively
// owns its working set for its duration). A second Run call while one is in
// progress fails fast with AlreadyRunningError rather than queuing.
type Orchestrator struct {
	reader      repositories.SourceReader
	writer      repositories.WorkingSetWriter
	sinkFactory func(runID string) repositories.EventSink
	logger      *zap.Logger
	clock       func() time.Time

	mu sync.Mutex
}

// Option configures an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithWriter attaches a working-set storage adapter. Without one, levels,
// requirements, supplies, planned orders, and the audit Parameters row are
// never persisted past the call returning.
func WithWriter(w repositories.WorkingSetWriter) Option {
	return func(o *Orchestrator) { o.writer = w }
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithClock overrides time.Now, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(o *Orchestrator) { o.clock = clock }
}

// New constructs an Orchestrator reading from reader. sinkFactory builds a
// fresh EventSink bound to each run's id, since both the in-memory and NATS
// sinks carry their run id at construction time rather than per call.
func New(reader repositories.SourceReader, sinkFactory func(runID string) repositories.EventSink, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		reader:      reader,
		sinkFactory: sinkFactory,
		logger:      zap.NewNop(),
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes one end-to-end MRP pass for config, returning the Summary
// (§6) or a typed mrperr. The context is threaded into every storage and
// netting call; cancellation surfaces as mrperr.CancelledError.
func (o *Orchestrator) Run(ctx context.Context, config entities.Config) (entities.Summary, error) {
	if !o.mu.TryLock() {
		return entities.Summary{}, &mrperr.AlreadyRunningError{}
	}
	defer o.mu.Unlock()

	runID := uuid.NewString()
	start := o.clock()
	logger := o.logger.With(zap.String("run_id", runID))
	sink := o.sinkFactory(runID)

	logger.Info("run started",
		zap.Bool("use_mrp_demands", config.UseMrpDemands),
		zap.Bool("use_reorder_level_demands", config.UseReorderLevelDemands),
		zap.Bool("retain_audit", config.RetainAudit),
	)
	sink.Started(config)

	summary, err := o.run(ctx, runID, start, config, logger)
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		sink.Failed(err, config)
		return entities.Summary{}, err
	}

	logger.Info("run succeeded",
		zap.Int("planned_order_count", summary.PlannedOrderCount),
		zap.Duration("run_time", summary.RunTime),
	)
	sink.Succeeded(summary)
	return summary, nil
}

func (o *Orchestrator) run(ctx context.Context, runID string, start time.Time, config entities.Config, logger *zap.Logger) (entities.Summary, error) {
	if o.writer != nil {
		if err := o.writer.CreateRun(ctx, runID); err != nil {
			return entities.Summary{}, err
		}
		if !config.RetainAudit {
			defer func() {
				if err := o.writer.ClearRun(ctx, runID); err != nil {
					logger.Warn("failed to release working set", zap.Error(err))
				}
			}()
		}
	}

	if err := ctx.Err(); err != nil {
		return entities.Summary{}, &mrperr.CancelledError{}
	}

	bomEdges, err := o.reader.GetBOMEdges(ctx)
	if err != nil {
		return entities.Summary{}, err
	}
	items, err := o.reader.GetItemMaster(ctx)
	if err != nil {
		return entities.Summary{}, err
	}
	leadTimes, err := o.reader.GetPreferredSupplierLeadTimes(ctx)
	if err != nil {
		return entities.Summary{}, err
	}

	parts := make([]entities.Part, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Part)
	}

	llc, err := leveler.AssignLevels(bomEdges, parts)
	if err != nil {
		return entities.Summary{}, err
	}

	cat := catalog.Build(items, leadTimes)

	today := o.clock()
	requirements, err := loaders.NewRequirementsLoader(today, config).Load(ctx, o.reader)
	if err != nil {
		return entities.Summary{}, err
	}
	supplies, err := loaders.NewSuppliesLoader(config).Load(ctx, o.reader)
	if err != nil {
		return entities.Summary{}, err
	}

	logger.Debug("working set loaded",
		zap.Int("parts", len(parts)),
		zap.Int("requirements", len(requirements)),
		zap.Int("supplies", len(supplies)),
	)

	result, err := netter.New(cat, bomEdges, today, config).Run(ctx, llc, requirements, supplies)
	if err != nil {
		return entities.Summary{}, err
	}

	summary := buildSummary(config, start, o.clock(), supplies, result)

	if o.writer != nil {
		if err := o.persist(ctx, runID, today, config, llc, cat, result, summary); err != nil {
			return entities.Summary{}, err
		}
	}

	return summary, nil
}

// persist writes the run's working set and audit Parameters through the
// storage adapter's write side (§12's RetainAudit-on-request supplement).
func (o *Orchestrator) persist(ctx context.Context, runID string, runAt time.Time, config entities.Config, llc map[entities.Part]int, cat *catalog.Catalog, result *netter.Result, summary entities.Summary) error {
	levels := make([]entities.LevelRecord, 0, len(llc))
	for part, level := range llc {
		item := cat.Get(part)
		rec, err := entities.NewLevelRecord(part, level, item.LeadTimeDays, item.PanSize, item.ShrinkFactor, item.EOQ)
		if err != nil {
			continue
		}
		levels = append(levels, rec)
	}
	if err := o.writer.WriteLevels(ctx, runID, levels); err != nil {
		return err
	}
	if err := o.writer.WriteRequirements(ctx, runID, result.Requirements); err != nil {
		return err
	}
	if err := o.writer.WriteSupplies(ctx, runID, result.Supplies); err != nil {
		return err
	}
	if err := o.writer.WritePlannedOrders(ctx, runID, result.PlannedOrders); err != nil {
		return err
	}

	locations := locationsJoined(config)
	params := entities.NewParameters(runID, runAt, config, locations)
	return o.writer.WriteParameters(ctx, runID, params)
}

func locationsJoined(config entities.Config) string {
	if config.LocationsAll() {
		return "All"
	}
	names := make([]string, 0, len(config.Locations))
	for loc, on := range config.Locations {
		if on {
			names = append(names, loc)
		}
	}
	sort.Strings(names)
	joined := ""
	for i, n := range names {
		if i > 0 {
			joined += ","
		}
		joined += n
	}
	return joined
}

// buildSummary aggregates the pre-run Supplies (for scheduled receipts) and
// the netter's Result (for gross requirements including BOM-exploded
// dependent demand, net requirements, planned orders, and advisory
// reschedules) into one PartSummary per part (§6).
func buildSummary(config entities.Config, start, end time.Time, supplies []entities.Supply, result *netter.Result) entities.Summary {
	type totals struct {
		gross, scheduled, net decimal.Decimal
		firstQty              decimal.Decimal
		firstDate             time.Time
		haveFirst             bool
	}

	byPart := make(map[entities.Part]*totals)
	get := func(part entities.Part) *totals {
		t, ok := byPart[part]
		if !ok {
			t = &totals{gross: decimal.Zero, scheduled: decimal.Zero, net: decimal.Zero, firstQty: decimal.Zero}
			byPart[part] = t
		}
		return t
	}

	for part, qty := range result.GrossRequirements {
		get(part).gross = get(part).gross.Add(qty)
	}
	for _, s := range supplies {
		get(s.Part).scheduled = get(s.Part).scheduled.Add(s.SupplyQty)
	}
	for _, r := range result.Requirements {
		get(r.Part).net = get(r.Part).net.Add(r.Quantity)
	}

	orders := append([]entities.PlannedOrder(nil), result.PlannedOrders...)
	sort.Slice(orders, func(i, j int) bool { return orders[i].DueDate.Before(orders[j].DueDate) })
	totalPlannedQty := decimal.Zero
	for _, o := range orders {
		t := get(o.Part)
		if !t.haveFirst {
			t.firstQty = o.Quantity
			t.firstDate = o.DueDate
			t.haveFirst = true
		}
		totalPlannedQty = totalPlannedQty.Add(o.Quantity)
	}

	parts := make([]entities.Part, 0, len(byPart))
	for part := range byPart {
		parts = append(parts, part)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i] < parts[j] })

	partSummaries := make([]entities.PartSummary, 0, len(parts))
	for _, part := range parts {
		t := byPart[part]
		partSummaries = append(partSummaries, entities.PartSummary{
			Part:              part,
			GrossRequirements: t.gross,
			ScheduledReceipts: t.scheduled,
			ProjectedBalance:  t.scheduled.Sub(t.gross),
			NetRequirements:   t.net,
			FirstPlannedQty:   t.firstQty,
			FirstPlannedDate:  t.firstDate,
			RescheduleCount:   result.RescheduleCounts[part],
		})
	}

	return entities.Summary{
		RunTime:           end.Sub(start),
		Parameters:        config,
		PlannedOrderCount: len(orders),
		TotalPlannedQty:   totalPlannedQty,
		PartSummaries:     partSummaries,
	}
}
