// file: internals/features/notifications/service/bus.go
package service

import (
	"sync"

	"github.com/google/uuid"
)

// SubmissionEvent is what cross-view observers receive when a submission
// changes. Fire-and-forget; no acknowledgment.
type SubmissionEvent struct {
	Event        string    `json:"event"`
	SubmissionID uuid.UUID `json:"submission_id"`
	Status       string    `json:"status"`
}

// Bus is the in-process observer hub replacing UI-runtime custom events.
type Bus struct {
	mu       sync.RWMutex
	handlers []func(SubmissionEvent)
}

func NewBus() *Bus {
	return &Bus{}
}

// DefaultBus is the process-wide hub the workflow services publish on.
var DefaultBus = NewBus()

func (b *Bus) OnSubmissionChanged(fn func(SubmissionEvent)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	b.handlers = append(b.handlers, fn)
	b.mu.Unlock()
}

// Publish hands the event to every observer without blocking the caller.
func (b *Bus) Publish(ev SubmissionEvent) {
	b.mu.RLock()
	handlers := make([]func(SubmissionEvent), len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, fn := range handlers {
		go fn(ev)
	}
}
