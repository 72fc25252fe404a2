package repositories

import "github.com/devkrishnan/mrpnet/pkg/domain/entities"

// EventSink is the engine's fire-and-forget event notifier (§6). There is no
// ordering guarantee across subscribers and the engine never waits on a
// handler to return.
type EventSink interface {
	Started(config entities.Config)
	Succeeded(summary entities.Summary)
	Failed(err error, config entities.Config)
}
