package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestHubPublishSubscribe проверяет доставку событий подписчику сессии.
func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()
	sessionID := uuid.New()

	ch, unsubscribe := hub.Subscribe(sessionID)
	defer unsubscribe()

	hub.Publish(sessionID, Event{Type: EventSessionUpdated})

	select {
	case event := <-ch:
		if event.Type != EventSessionUpdated {
			t.Fatalf("expected event type %s, got %s", EventSessionUpdated, event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}

// TestHubUnsubscribe проверяет закрытие канала после отписки.
func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	sessionID := uuid.New()

	ch, unsubscribe := hub.Subscribe(sessionID)
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}
}

// TestHubIsolation проверяет, что события не утекают между сессиями.
func TestHubIsolation(t *testing.T) {
	hub := NewHub()
	first := uuid.New()
	second := uuid.New()

	ch, unsubscribe := hub.Subscribe(first)
	defer unsubscribe()

	hub.Publish(second, Event{Type: EventContractUpdated})

	select {
	case event := <-ch:
		t.Fatalf("unexpected event %s for another session", event.Type)
	case <-time.After(100 * time.Millisecond):
	}
}
