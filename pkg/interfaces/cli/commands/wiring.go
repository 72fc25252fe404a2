package commands

import (
	"context"
	"fmt"

	"github.com/devkrishnan/mrpnet/pkg/config"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/devkrishnan/mrpnet/pkg/infrastructure/events"
	"github.com/devkrishnan/mrpnet/pkg/infrastructure/metrics"
	"github.com/devkrishnan/mrpnet/pkg/infrastructure/repositories/memdb"
	"github.com/devkrishnan/mrpnet/pkg/infrastructure/repositories/postgres"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// buildWriter constructs the working-set storage adapter named by
// cfg.StorageBackend. "memory" means no persisted working set at all: the
// orchestrator keeps its own in-process working set regardless and simply
// has nothing to write audit snapshots to.
func buildWriter(ctx context.Context, cfg *config.AppConfig) (repositories.WorkingSetWriter, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		return nil, func() {}, nil
	case "memdb":
		store, err := memdb.NewStore()
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.Postgres.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := postgres.Migrate(cfg.Postgres.DatabaseURL, cfg.Postgres.MigrationsDir); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		store := postgres.NewStore(pool)
		return store, func() { pool.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

// buildSinkFactory constructs the per-run EventSink factory named by
// cfg.EventSink, optionally wrapped with the Prometheus metrics decorator.
func buildSinkFactory(cfg *config.AppConfig, logger *zap.Logger, registry *prometheus.Registry) (func(string) repositories.EventSink, func(), error) {
	var base func(runID string) repositories.EventSink
	var closer func()

	switch cfg.EventSink {
	case "memory":
		store := events.NewInMemoryEventStoreWithLogger(logger)
		base = func(runID string) repositories.EventSink { return events.NewSink(store, runID) }
		closer = func() {}
	case "nats":
		conns := make([]*events.NATSSink, 0)
		base = func(runID string) repositories.EventSink {
			sink, err := events.NewNATSSink(cfg.NATS.URL, runID, logger)
			if err != nil {
				logger.Error("failed to connect nats sink, falling back to no-op", zap.Error(err))
				return events.NewSink(events.NewInMemoryEventStoreWithLogger(logger), runID)
			}
			conns = append(conns, sink)
			return sink
		}
		closer = func() {
			for _, c := range conns {
				c.Close()
			}
		}
	default:
		return nil, nil, fmt.Errorf("unknown event sink: %s", cfg.EventSink)
	}

	if !cfg.Metrics.Enabled {
		return base, closer, nil
	}

	collector := metrics.NewCollector()
	if err := collector.Register(registry); err != nil {
		return nil, nil, fmt.Errorf("registering metrics collector: %w", err)
	}
	wrapped := func(runID string) repositories.EventSink {
		return metrics.NewEventSink(base(runID), collector)
	}
	return wrapped, closer, nil
}
