package repositories

import (
	"context"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
)

// WorkingSetWriter is the write side of the storage adapter (§6): create,
// clear, read, and write the per-run Requirements, Supplies, PlannedOrders,
// Levels, and audit Parameters sets. A Run owns these sets exclusively for
// its duration and they are released on every exit path.
type WorkingSetWriter interface {
	CreateRun(ctx context.Context, runID string) error
	ClearRun(ctx context.Context, runID string) error

	WriteLevels(ctx context.Context, runID string, levels []entities.LevelRecord) error
	ReadLevels(ctx context.Context, runID string) ([]entities.LevelRecord, error)

	WriteRequirements(ctx context.Context, runID string, requirements []entities.Requirement) error
	ReadRequirements(ctx context.Context, runID string) ([]entities.Requirement, error)

	WriteSupplies(ctx context.Context, runID string, supplies []entities.Supply) error
	ReadSupplies(ctx context.Context, runID string) ([]entities.Supply, error)

	WritePlannedOrders(ctx context.Context, runID string, orders []entities.PlannedOrder) error
	ReadPlannedOrders(ctx context.Context, runID string) ([]entities.PlannedOrder, error)

	WriteParameters(ctx context.Context, runID string, params entities.Parameters) error
}

// Storage is the full storage adapter contract an engine depends on.
type Storage interface {
	SourceReader
	WorkingSetWriter
}
