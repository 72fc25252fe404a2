package events

import (
	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
)

// Sink adapts the engine's fire-and-forget repositories.EventSink contract
// (§6) onto the teacher's event-sourcing store: every lifecycle call is
// appended to the run's own stream, so an operator can replay a run's
// Started/Succeeded/Failed history after the fact.
type Sink struct {
	store *InMemoryEventStore
	runID string
}

var _ repositories.EventSink = (*Sink)(nil)

// NewSink builds an EventSink that publishes onto store under runID's stream.
func NewSink(store *InMemoryEventStore, runID string) *Sink {
	return &Sink{store: store, runID: runID}
}

// Started publishes a RunStarted event. The engine never waits on this call.
func (s *Sink) Started(config entities.Config) {
	_ = s.store.AppendEvent(s.runID, NewRunStartedEvent(s.runID, config))
}

// Succeeded publishes a RunSucceeded event, plus one ShortageIdentified per
// part with unmet net requirements, so subscribers don't need to re-derive
// them from the summary. No OrderPlanned events are published: the Summary
// carries no individual planned orders.
func (s *Sink) Succeeded(summary entities.Summary) {
	_ = s.store.AppendEvent(s.runID, NewRunSucceededEvent(s.runID, summary))
	for _, ps := range summary.PartSummaries {
		if ps.NetRequirements.IsPositive() {
			_ = s.store.AppendEvent(s.runID, NewShortageIdentifiedEvent(ps))
		}
	}
}

// Failed publishes a RunFailed event.
func (s *Sink) Failed(err error, config entities.Config) {
	_ = s.store.AppendEvent(s.runID, NewRunFailedEvent(s.runID, err, config))
}
