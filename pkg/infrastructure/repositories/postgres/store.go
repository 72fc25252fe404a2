package postgres

import (
	"context"
	"fmt"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/mrperr"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements repositories.WorkingSetWriter against the tables
// migrated by Migrate, batching inserts through pgx.Batch the way
// Franklyn2211-semen-dashboard's seed.go batches row inserts.
type Store struct {
	pool *pgxpool.Pool
}

var _ repositories.WorkingSetWriter = (*Store)(nil)

// NewStore wraps an already-connected pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) CreateRun(ctx context.Context, runID string) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO runs (run_id) VALUES ($1) ON CONFLICT (run_id) DO NOTHING`, runID)
	return mrperr.NewStorageError(err)
}

func (s *Store) ClearRun(ctx context.Context, runID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM runs WHERE run_id = $1`, runID)
	return mrperr.NewStorageError(err)
}

func (s *Store) WriteLevels(ctx context.Context, runID string, levels []entities.LevelRecord) error {
	batch := &pgx.Batch{}
	for _, l := range levels {
		batch.Queue(
			`INSERT INTO levels (run_id, part, llc, lead_time_days, pan_size, shrink_factor, eoq)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (run_id, part) DO UPDATE SET
			   llc = EXCLUDED.llc, lead_time_days = EXCLUDED.lead_time_days,
			   pan_size = EXCLUDED.pan_size, shrink_factor = EXCLUDED.shrink_factor, eoq = EXCLUDED.eoq`,
			runID, string(l.Part), l.LLC, l.LeadTimeDays, l.PanSize, l.ShrinkFactor, l.EOQ,
		)
	}
	return s.runBatch(ctx, batch, len(levels))
}

func (s *Store) ReadLevels(ctx context.Context, runID string) ([]entities.LevelRecord, error) {
	rows, err := s.pool.Query(ctx, `SELECT part, llc, lead_time_days, pan_size, shrink_factor, eoq FROM levels WHERE run_id = $1`, runID)
	if err != nil {
		return nil, mrperr.NewStorageError(err)
	}
	defer rows.Close()

	var out []entities.LevelRecord
	for rows.Next() {
		var l entities.LevelRecord
		var part string
		if err := rows.Scan(&part, &l.LLC, &l.LeadTimeDays, &l.PanSize, &l.ShrinkFactor, &l.EOQ); err != nil {
			return nil, mrperr.NewStorageError(err)
		}
		l.Part = entities.Part(part)
		out = append(out, l)
	}
	return out, mrperr.NewStorageError(rows.Err())
}

func (s *Store) WriteRequirements(ctx context.Context, runID string, requirements []entities.Requirement) error {
	batch := &pgx.Batch{}
	for i, r := range requirements {
		batch.Queue(
			`INSERT INTO requirements (run_id, seq, part, date_required, quantity, demand_type, order_no, direct_demand, where_required)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			runID, i, string(r.Part), r.DateRequired, r.Quantity, int(r.DemandType), r.OrderNo, r.DirectDemand, string(r.WhereRequired),
		)
	}
	return s.runBatch(ctx, batch, len(requirements))
}

func (s *Store) ReadRequirements(ctx context.Context, runID string) ([]entities.Requirement, error) {
	rows, err := s.pool.Query(ctx, `SELECT part, date_required, quantity, demand_type, order_no, direct_demand, where_required FROM requirements WHERE run_id = $1 ORDER BY seq`, runID)
	if err != nil {
		return nil, mrperr.NewStorageError(err)
	}
	defer rows.Close()

	var out []entities.Requirement
	for rows.Next() {
		var r entities.Requirement
		var part, where string
		var demandType int
		if err := rows.Scan(&part, &r.DateRequired, &r.Quantity, &demandType, &r.OrderNo, &r.DirectDemand, &where); err != nil {
			return nil, mrperr.NewStorageError(err)
		}
		r.Part = entities.Part(part)
		r.WhereRequired = entities.Part(where)
		r.DemandType = entities.DemandType(demandType)
		out = append(out, r)
	}
	return out, mrperr.NewStorageError(rows.Err())
}

func (s *Store) WriteSupplies(ctx context.Context, runID string, supplies []entities.Supply) error {
	batch := &pgx.Batch{}
	for _, sup := range supplies {
		batch.Queue(
			`INSERT INTO supplies (run_id, id, part, due_date, supply_qty, order_type, order_no, mrp_date, update_flag)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (run_id, id) DO UPDATE SET
			   supply_qty = EXCLUDED.supply_qty, mrp_date = EXCLUDED.mrp_date, update_flag = EXCLUDED.update_flag`,
			runID, sup.ID, string(sup.Part), sup.DueDate, sup.SupplyQty, int(sup.OrderType), sup.OrderNo, sup.MRPDate, sup.UpdateFlag,
		)
	}
	return s.runBatch(ctx, batch, len(supplies))
}

func (s *Store) ReadSupplies(ctx context.Context, runID string) ([]entities.Supply, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, part, due_date, supply_qty, order_type, order_no, mrp_date, update_flag FROM supplies WHERE run_id = $1`, runID)
	if err != nil {
		return nil, mrperr.NewStorageError(err)
	}
	defer rows.Close()

	var out []entities.Supply
	for rows.Next() {
		var sup entities.Supply
		var part string
		var orderType int
		if err := rows.Scan(&sup.ID, &part, &sup.DueDate, &sup.SupplyQty, &orderType, &sup.OrderNo, &sup.MRPDate, &sup.UpdateFlag); err != nil {
			return nil, mrperr.NewStorageError(err)
		}
		sup.Part = entities.Part(part)
		sup.OrderType = entities.OrderType(orderType)
		out = append(out, sup)
	}
	return out, mrperr.NewStorageError(rows.Err())
}

func (s *Store) WritePlannedOrders(ctx context.Context, runID string, orders []entities.PlannedOrder) error {
	batch := &pgx.Batch{}
	for i, o := range orders {
		batch.Queue(
			`INSERT INTO planned_orders (run_id, seq, part, due_date, quantity, source_demand_type, source_order_no)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			runID, i, string(o.Part), o.DueDate, o.Quantity, int(o.SourceDemandType), o.SourceOrderNo,
		)
	}
	return s.runBatch(ctx, batch, len(orders))
}

func (s *Store) ReadPlannedOrders(ctx context.Context, runID string) ([]entities.PlannedOrder, error) {
	rows, err := s.pool.Query(ctx, `SELECT part, due_date, quantity, source_demand_type, source_order_no FROM planned_orders WHERE run_id = $1 ORDER BY seq`, runID)
	if err != nil {
		return nil, mrperr.NewStorageError(err)
	}
	defer rows.Close()

	var out []entities.PlannedOrder
	for rows.Next() {
		var o entities.PlannedOrder
		var part string
		var demandType int
		if err := rows.Scan(&part, &o.DueDate, &o.Quantity, &demandType, &o.SourceOrderNo); err != nil {
			return nil, mrperr.NewStorageError(err)
		}
		o.Part = entities.Part(part)
		o.SourceDemandType = entities.DemandType(demandType)
		out = append(out, o)
	}
	return out, mrperr.NewStorageError(rows.Err())
}

func (s *Store) WriteParameters(ctx context.Context, runID string, params entities.Parameters) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO parameters (run_id, run_at, use_mrp_demands, use_reorder_level_demands, use_eoq, use_pan_size, use_shrinkage, leeway_days, locations)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (run_id) DO UPDATE SET
		   run_at = EXCLUDED.run_at, use_mrp_demands = EXCLUDED.use_mrp_demands,
		   use_reorder_level_demands = EXCLUDED.use_reorder_level_demands, use_eoq = EXCLUDED.use_eoq,
		   use_pan_size = EXCLUDED.use_pan_size, use_shrinkage = EXCLUDED.use_shrinkage,
		   leeway_days = EXCLUDED.leeway_days, locations = EXCLUDED.locations`,
		params.RunID, params.RunAt, params.UseMrpDemands, params.UseReorderLevelDemands,
		params.UseEOQ, params.UsePanSize, params.UseShrinkage, params.LeewayDays, params.Locations,
	)
	return mrperr.NewStorageError(err)
}

// runBatch sends batch to the pool and drains every queued result, the
// fail-fast batch-execution shape Franklyn2211-semen-dashboard's seed.go uses.
func (s *Store) runBatch(ctx context.Context, batch *pgx.Batch, n int) error {
	if n == 0 {
		return nil
	}
	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < n; i++ {
		if _, err := results.Exec(); err != nil {
			return mrperr.NewStorageError(fmt.Errorf("batch item %d: %w", i, err))
		}
	}
	return nil
}
