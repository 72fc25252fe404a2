// Package memdb implements the storage adapter's write side (§6) with
// hashicorp/go-memdb: an in-process, schema-indexed database giving each
// Run its own isolated Requirements/Supplies/PlannedOrders/Levels/
// Parameters tables (§3 Run ownership, §5 release-on-exit), indexed by
// run id, with run id plus part (levels), sequence number (requirements,
// planned orders) or supply id (supplies) as each row's unique key, without
// needing an actual database connection for the common single-process case.
package memdb

import (
	"context"
	"fmt"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/mrperr"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/hashicorp/go-memdb"
)

const (
	tableRuns       = "runs"
	tableLevels     = "levels"
	tableReqs       = "requirements"
	tableSupplies   = "supplies"
	tablePlanned    = "planned_orders"
	tableParameters = "parameters"
)

type levelRow struct {
	RunID string
	Part  entities.Part
	entities.LevelRecord
}

type requirementRow struct {
	RunID string
	Seq   int
	entities.Requirement
}

type supplyRow struct {
	RunID string
	entities.Supply
}

type plannedOrderRow struct {
	RunID string
	Seq   int
	entities.PlannedOrder
}

type parametersRow struct {
	entities.Parameters
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableRuns: {
				Name: tableRuns,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "RunID"}},
				},
			},
			tableLevels: {
				Name: tableLevels,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "RunID"},
							&memdb.StringFieldIndex{Field: "Part"},
						},
					}},
					"run": {Name: "run", Indexer: &memdb.StringFieldIndex{Field: "RunID"}},
				},
			},
			tableReqs: {
				Name: tableReqs,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "RunID"},
							&memdb.IntFieldIndex{Field: "Seq"},
						},
					}},
					"run": {Name: "run", Indexer: &memdb.StringFieldIndex{Field: "RunID"}},
				},
			},
			tableSupplies: {
				Name: tableSupplies,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "RunID"},
							&memdb.StringFieldIndex{Field: "ID"},
						},
					}},
					"run": {Name: "run", Indexer: &memdb.StringFieldIndex{Field: "RunID"}},
				},
			},
			tablePlanned: {
				Name: tablePlanned,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "RunID"},
							&memdb.IntFieldIndex{Field: "Seq"},
						},
					}},
					"run": {Name: "run", Indexer: &memdb.StringFieldIndex{Field: "RunID"}},
				},
			},
			tableParameters: {
				Name: tableParameters,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "RunID"}},
				},
			},
		},
	}
}

// runMarker is the row stored in tableRuns to mark a run as created, so
// ClearRun has something to delete even when no levels/requirements were
// ever written.
type runMarker struct {
	RunID string
}

// Store is a go-memdb-backed implementation of repositories.WorkingSetWriter.
type Store struct {
	db *memdb.MemDB
}

var _ repositories.WorkingSetWriter = (*Store)(nil)

// NewStore constructs an empty memdb-backed working-set store.
func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, mrperr.NewStorageError(fmt.Errorf("failed to build memdb schema: %w", err))
	}
	return &Store{db: db}, nil
}

// CreateRun registers runID as owning its own working-set rows.
func (s *Store) CreateRun(ctx context.Context, runID string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(tableRuns, runMarker{RunID: runID}); err != nil {
		return mrperr.NewStorageError(err)
	}
	txn.Commit()
	return nil
}

// ClearRun deletes every row belonging to runID across all working-set
// tables, releasing the run's transient storage per §5.
func (s *Store) ClearRun(ctx context.Context, runID string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	for _, table := range []string{tableLevels, tableReqs, tableSupplies, tablePlanned} {
		if _, err := txn.DeleteAll(table, "run", runID); err != nil {
			return mrperr.NewStorageError(err)
		}
	}
	if _, err := txn.DeleteAll(tableParameters, "id", runID); err != nil {
		return mrperr.NewStorageError(err)
	}
	if _, err := txn.DeleteAll(tableRuns, "id", runID); err != nil {
		return mrperr.NewStorageError(err)
	}
	txn.Commit()
	return nil
}

func (s *Store) WriteLevels(ctx context.Context, runID string, levels []entities.LevelRecord) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	for _, l := range levels {
		row := levelRow{RunID: runID, Part: l.Part, LevelRecord: l}
		if err := txn.Insert(tableLevels, row); err != nil {
			return mrperr.NewStorageError(err)
		}
	}
	txn.Commit()
	return nil
}

func (s *Store) ReadLevels(ctx context.Context, runID string) ([]entities.LevelRecord, error) {
	txn := s.db.Txn(false)
	it, err := txn.Get(tableLevels, "run", runID)
	if err != nil {
		return nil, mrperr.NewStorageError(err)
	}
	var out []entities.LevelRecord
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, obj.(levelRow).LevelRecord)
	}
	return out, nil
}

func (s *Store) WriteRequirements(ctx context.Context, runID string, requirements []entities.Requirement) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	for i, r := range requirements {
		row := requirementRow{RunID: runID, Seq: i, Requirement: r}
		if err := txn.Insert(tableReqs, row); err != nil {
			return mrperr.NewStorageError(err)
		}
	}
	txn.Commit()
	return nil
}

func (s *Store) ReadRequirements(ctx context.Context, runID string) ([]entities.Requirement, error) {
	txn := s.db.Txn(false)
	it, err := txn.Get(tableReqs, "run", runID)
	if err != nil {
		return nil, mrperr.NewStorageError(err)
	}
	var out []entities.Requirement
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, obj.(requirementRow).Requirement)
	}
	return out, nil
}

func (s *Store) WriteSupplies(ctx context.Context, runID string, supplies []entities.Supply) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	for _, sup := range supplies {
		row := supplyRow{RunID: runID, Supply: sup}
		if err := txn.Insert(tableSupplies, row); err != nil {
			return mrperr.NewStorageError(err)
		}
	}
	txn.Commit()
	return nil
}

func (s *Store) ReadSupplies(ctx context.Context, runID string) ([]entities.Supply, error) {
	txn := s.db.Txn(false)
	it, err := txn.Get(tableSupplies, "run", runID)
	if err != nil {
		return nil, mrperr.NewStorageError(err)
	}
	var out []entities.Supply
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, obj.(supplyRow).Supply)
	}
	return out, nil
}

func (s *Store) WritePlannedOrders(ctx context.Context, runID string, orders []entities.PlannedOrder) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	for i, o := range orders {
		row := plannedOrderRow{RunID: runID, Seq: i, PlannedOrder: o}
		if err := txn.Insert(tablePlanned, row); err != nil {
			return mrperr.NewStorageError(err)
		}
	}
	txn.Commit()
	return nil
}

func (s *Store) ReadPlannedOrders(ctx context.Context, runID string) ([]entities.PlannedOrder, error) {
	txn := s.db.Txn(false)
	it, err := txn.Get(tablePlanned, "run", runID)
	if err != nil {
		return nil, mrperr.NewStorageError(err)
	}
	var out []entities.PlannedOrder
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, obj.(plannedOrderRow).PlannedOrder)
	}
	return out, nil
}

func (s *Store) WriteParameters(ctx context.Context, runID string, params entities.Parameters) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(tableParameters, parametersRow{Parameters: params}); err != nil {
		return mrperr.NewStorageError(err)
	}
	txn.Commit()
	return nil
}
