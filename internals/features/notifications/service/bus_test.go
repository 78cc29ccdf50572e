// file: internals/features/notifications/service/bus_test.go
package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBusDeliversToAllHandlers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(2)
	var mu sync.Mutex
	var got []SubmissionEvent

	handler := func(ev SubmissionEvent) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
		wg.Done()
	}
	bus.OnSubmissionChanged(handler)
	bus.OnSubmissionChanged(handler)

	ev := SubmissionEvent{
		Event:        EventSubmissionUpdated,
		SubmissionID: uuid.New(),
		Status:       "pending_initial_approval",
	}
	bus.Publish(ev)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers not invoked within 2s")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("delivered %d events, want 2", len(got))
	}
	for _, g := range got {
		if g != ev {
			t.Fatalf("delivered %+v, want %+v", g, ev)
		}
	}
}

func TestBusPublishWithoutHandlers(t *testing.T) {
	bus := NewBus()
	// Must not panic or block.
	bus.Publish(SubmissionEvent{Event: EventSubmissionUpdated, SubmissionID: uuid.New()})
}
