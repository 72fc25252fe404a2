// Package metrics exposes Prometheus collectors for run-level engine
// metrics, grounded on acdtunes-spacetraders's metrics collector shape
// (a struct of Vec collectors registered against an injected Registry).
// No HTTP /metrics endpoint is wired here — that belongs to the excluded
// UI layer (§1 Non-goals) — the Registry is left as an injectable
// collaborator so a host process can expose it.
package metrics

import (
	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "mrpnet"
	subsystem = "engine"
)

// Collector tracks run duration, planned-order volume, and terminal
// outcomes for the engine.
type Collector struct {
	runDuration        prometheus.Histogram
	runsTotal          *prometheus.CounterVec
	plannedOrdersTotal prometheus.Counter
	plannedQtyTotal    prometheus.Counter
}

// NewCollector builds a Collector with unregistered metrics.
func NewCollector() *Collector {
	return &Collector{
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a completed run.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Total runs by terminal outcome.",
		}, []string{"outcome"}),
		plannedOrdersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "planned_orders_total",
			Help:      "Total planned orders emitted across all runs.",
		}),
		plannedQtyTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "planned_quantity_total",
			Help:      "Total planned order quantity emitted across all runs.",
		}),
	}
}

// Register registers every collector against reg.
func (c *Collector) Register(reg *prometheus.Registry) error {
	collectors := []prometheus.Collector{c.runDuration, c.runsTotal, c.plannedOrdersTotal, c.plannedQtyTotal}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// EventSink wraps another repositories.EventSink, recording metrics on each
// lifecycle call before delegating. Composing this way keeps metrics
// collection out of the engine's own code path per §6's decorator shape.
type EventSink struct {
	next      repositories.EventSink
	collector *Collector
}

var _ repositories.EventSink = (*EventSink)(nil)

// NewEventSink wraps next with metrics recording.
func NewEventSink(next repositories.EventSink, collector *Collector) *EventSink {
	return &EventSink{next: next, collector: collector}
}

func (s *EventSink) Started(config entities.Config) {
	s.next.Started(config)
}

func (s *EventSink) Succeeded(summary entities.Summary) {
	s.collector.runDuration.Observe(summary.RunTime.Seconds())
	s.collector.runsTotal.WithLabelValues("succeeded").Inc()
	s.collector.plannedOrdersTotal.Add(float64(summary.PlannedOrderCount))
	qty, _ := summary.TotalPlannedQty.Float64()
	s.collector.plannedQtyTotal.Add(qty)
	s.next.Succeeded(summary)
}

func (s *EventSink) Failed(err error, config entities.Config) {
	s.collector.runsTotal.WithLabelValues("failed").Inc()
	s.next.Failed(err, config)
}
