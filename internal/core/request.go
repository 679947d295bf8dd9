package core

import "github.com/google/uuid"

// RequestKind describes what the client wants to do.
type RequestKind int

const (
	// RequestJoin asks to enter the room under a display name.
	RequestJoin RequestKind = iota
	// RequestPostMessage posts a text message to the feed.
	RequestPostMessage
	// RequestDisconnect is enqueued by the connection supervisor on teardown.
	// It never arrives from the wire.
	RequestDisconnect
	// RequestInvalid marks a frame that decoded as JSON but not as a known
	// request; the worker answers it with an error event.
	RequestInvalid
)

// Request is a decoded client action.
type Request struct {
	Kind RequestKind
	Name string // RequestJoin
	Text string // RequestPostMessage
}

// RequestEnvelope tags a request with the connection identity it came from,
// so the worker can attribute it after the per-connection streams merge.
type RequestEnvelope struct {
	ClientID uuid.UUID
	Request  Request
}
