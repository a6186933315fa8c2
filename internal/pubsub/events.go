// Package pubsub fans events out to subscribers.
//
// The logger publishes every entry and the file watcher publishes every
// settled change; the TUI subscribes to both through a ContinuousListener so
// events arrive as tea.Msg values in the update loop.
package pubsub

import (
	"context"
	"time"
)

// EventType says what happened to the payload.
type EventType string

const (
	// LoggedEvent carries a log entry.
	LoggedEvent EventType = "logged"
	// ChangedEvent carries a file that was written on disk.
	ChangedEvent EventType = "changed"
	// RemovedEvent carries a file that was removed or renamed away.
	RemovedEvent EventType = "removed"
)

// Event is one published payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out subscription channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher sends events.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
