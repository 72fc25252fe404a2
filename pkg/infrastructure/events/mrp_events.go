package events

import (
	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
)

// Event type identifiers for the run lifecycle and per-part netting
// outcomes, grounded on the teacher's event-naming convention
// (<noun>.<verb>, lowercase dotted).
const (
	RunStartedEvent   = "run.started"
	RunSucceededEvent = "run.succeeded"
	RunFailedEvent    = "run.failed"

	OrderPlannedEvent       = "order.planned"
	ShortageIdentifiedEvent = "shortage.identified"
)

// RunStarted is published when a run begins, carrying the resolved
// configuration for the run (§6 Started(config)).
type RunStarted struct {
	Config entities.Config `json:"config"`
}

// RunSucceeded is published when a run completes, carrying its Summary
// (§6 Succeeded(summary)).
type RunSucceeded struct {
	Summary entities.Summary `json:"summary"`
}

// RunFailed is published when a run aborts, carrying the error and the
// configuration it was started with (§6 Failed(error, config)).
type RunFailed struct {
	Err    string          `json:"error"`
	Config entities.Config `json:"config"`
}

// OrderPlanned carries a single planned order. Neither Sink nor NATSSink
// publishes it.
type OrderPlanned struct {
	PlannedOrder entities.PlannedOrder `json:"planned_order"`
}

// ShortageIdentified is published when a part's gross requirements exceed
// its scheduled receipts — i.e. its PartSummary.NetRequirements is positive.
type ShortageIdentified struct {
	PartSummary entities.PartSummary `json:"part_summary"`
}

// NewRunStartedEvent builds a RunStarted event on the run's own stream.
func NewRunStartedEvent(runID string, config entities.Config) Event {
	return NewEvent(RunStartedEvent, runID, RunStarted{Config: config})
}

// NewRunSucceededEvent builds a RunSucceeded event on the run's own stream.
func NewRunSucceededEvent(runID string, summary entities.Summary) Event {
	return NewEvent(RunSucceededEvent, runID, RunSucceeded{Summary: summary})
}

// NewRunFailedEvent builds a RunFailed event on the run's own stream.
func NewRunFailedEvent(runID string, err error, config entities.Config) Event {
	return NewEvent(RunFailedEvent, runID, RunFailed{Err: err.Error(), Config: config})
}

// NewOrderPlannedEvent builds an OrderPlanned event keyed by part.
func NewOrderPlannedEvent(order entities.PlannedOrder) Event {
	return NewEvent(OrderPlannedEvent, string(order.Part), OrderPlanned{PlannedOrder: order})
}

// NewShortageIdentifiedEvent builds a ShortageIdentified event keyed by part.
func NewShortageIdentifiedEvent(summary entities.PartSummary) Event {
	return NewEvent(ShortageIdentifiedEvent, string(summary.Part), ShortageIdentified{PartSummary: summary})
}
