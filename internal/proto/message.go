// Package proto defines the JSON wire contract: tagged unions with a "type"
// discriminator and a "payload" body, exchanged as WebSocket text frames.
package proto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Request is the envelope for frames coming from the client.
type Request struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	RequestTypeJoin        = "join"
	RequestTypePostMessage = "postMessage"
)

// JoinPayload asks to enter the room under a display name.
type JoinPayload struct {
	Name string `json:"name"`
}

// PostMessagePayload posts a text message to the feed.
type PostMessagePayload struct {
	Text string `json:"text"`
}

// Response is the envelope for frames sent to the client.
type Response struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

const (
	ResponseTypeError      = "error"
	ResponseTypeAlive      = "alive"
	ResponseTypeJoined     = "joined"
	ResponseTypeUserJoined = "userJoined"
	ResponseTypeUserLeft   = "userLeft"
	ResponseTypePosted     = "posted"
	ResponseTypeUserPosted = "userPosted"
)

// UserPayload identifies a participant.
type UserPayload struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MessagePayload is a feed entry with its author snapshot.
type MessagePayload struct {
	ID           uuid.UUID   `json:"id"`
	User         UserPayload `json:"user"`
	Text         string      `json:"text"`
	CreatedAtUtc time.Time   `json:"createdAtUtc"`
}

// JoinedPayload is the room snapshot sent to a client that just joined.
type JoinedPayload struct {
	User       UserPayload      `json:"user"`
	OtherUsers []UserPayload    `json:"otherUsers"`
	Messages   []MessagePayload `json:"messages"`
}

// UserJoinedPayload announces a new participant to everyone else.
type UserJoinedPayload struct {
	User UserPayload `json:"user"`
}

// UserLeftPayload announces a departure.
type UserLeftPayload struct {
	ID uuid.UUID `json:"id"`
}

// PostedPayload carries a posted message, both to its author ("posted") and
// to every other participant ("userPosted").
type PostedPayload struct {
	Message MessagePayload `json:"message"`
}
