// Package notify fans queue changes out to live displays and message brokers.
package notify

import (
	"context"
	"log"
	"time"
)

// Event types.
const (
	EventJoined   = "queue.joined"
	EventServed   = "queue.served"
	EventRestored = "queue.restored"
	EventRemoved  = "queue.removed"
)

// Event describes one change to the serving queue.
type Event struct {
	Type     string    `json:"type"`
	EntryID  uint      `json:"entry_id"`
	Name     string    `json:"name,omitempty"`
	Position int       `json:"position,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher delivers queue events. Publishing is best effort: failures are
// the publisher's to log and never reach the caller's response.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Nop discards every event.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, Event) {}

// Multi publishes to each publisher in order.
type Multi []Publisher

// Publish implements Publisher.
func (m Multi) Publish(ctx context.Context, event Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(ctx, event)
		}
	}
}

func logf(format string, args ...interface{}) {
	log.Printf("notify: "+format, args...)
}
