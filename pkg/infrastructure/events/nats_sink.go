package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// NATS subjects a run's lifecycle events publish to, grounded on the
// douglaslinsmeyer queue manager's "<noun>.<verb>" subject convention.
const (
	SubjectRunStarted   = "mrp.run.started"
	SubjectRunSucceeded = "mrp.run.succeeded"
	SubjectRunFailed    = "mrp.run.failed"
)

// NATSSink publishes run lifecycle events to a NATS subject, fire-and-forget
// per §6. It never blocks the engine on a subscriber.
type NATSSink struct {
	conn   *nats.Conn
	runID  string
	logger *zap.Logger
}

var _ repositories.EventSink = (*NATSSink)(nil)

// NewNATSSink connects to natsURL with the reconnect/handler options the
// pack's queue manager uses, and returns a sink for runID. Every published
// message gets a fresh correlation id.
func NewNATSSink(natsURL, runID string, logger *zap.Logger) (*NATSSink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	options := []nats.Option{
		nats.Name("mrpnet-engine"),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("nats connection closed")
		}),
	}

	conn, err := nats.Connect(natsURL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	return &NATSSink{conn: conn, runID: runID, logger: logger}, nil
}

// Close releases the underlying NATS connection.
func (s *NATSSink) Close() {
	if s.conn != nil {
		s.conn.Close()
	}
}

type natsEnvelope struct {
	CorrelationID string      `json:"correlation_id"`
	RunID         string      `json:"run_id"`
	Payload       interface{} `json:"payload"`
}

func (s *NATSSink) publish(subject string, payload interface{}) {
	envelope := natsEnvelope{
		CorrelationID: uuid.NewString(),
		RunID:         s.runID,
		Payload:       payload,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		s.logger.Error("failed to marshal nats event", zap.String("subject", subject), zap.Error(err))
		return
	}
	if err := s.conn.Publish(subject, data); err != nil {
		s.logger.Warn("failed to publish nats event", zap.String("subject", subject), zap.Error(err))
	}
}

// Started publishes RunStarted to SubjectRunStarted.
func (s *NATSSink) Started(config entities.Config) {
	s.publish(SubjectRunStarted, RunStarted{Config: config})
}

// Succeeded publishes RunSucceeded to SubjectRunSucceeded.
func (s *NATSSink) Succeeded(summary entities.Summary) {
	s.publish(SubjectRunSucceeded, RunSucceeded{Summary: summary})
}

// Failed publishes RunFailed to SubjectRunFailed.
func (s *NATSSink) Failed(err error, config entities.Config) {
	s.publish(SubjectRunFailed, RunFailed{Err: err.Error(), Config: config})
}
