package core

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// mustEnvelope waits for the next envelope addressed to clientID with the
// given kind, skipping envelopes meant for other subscribers.
func mustEnvelope(t *testing.T, ch <-chan ResponseEnvelope, clientID uuid.UUID, kind EventKind) Event {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case envelope := <-ch:
			if envelope.ClientID == clientID && envelope.Event.Kind == kind {
				return envelope.Event
			}
		case <-deadline:
			t.Fatalf("expected event kind %v for client %s not received", kind, clientID)
			return Event{}
		}
	}
}

// neverEnvelope asserts that no envelope addressed to clientID with the given
// kind shows up within a short window.
func neverEnvelope(t *testing.T, ch <-chan ResponseEnvelope, clientID uuid.UUID, kind EventKind) {
	t.Helper()

	deadline := time.After(200 * time.Millisecond)
	for {
		select {
		case envelope := <-ch:
			if envelope.ClientID == clientID && envelope.Event.Kind == kind {
				t.Fatalf("unexpected event kind %v for client %s: %+v", kind, clientID, envelope.Event)
			}
		case <-deadline:
			return
		}
	}
}
