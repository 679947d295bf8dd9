package core

import (
	"time"

	"github.com/google/uuid"
)

// Message is the domain model for a posted chat message. Immutable once
// created; the User field is a snapshot of the author at post time.
type Message struct {
	ID        uuid.UUID
	User      User
	Text      string
	CreatedAt time.Time
}

// NewMessage constructs a message stamped with the given creation time.
func NewMessage(id uuid.UUID, user User, text string, createdAt time.Time) Message {
	return Message{
		ID:        id,
		User:      user,
		Text:      text,
		CreatedAt: createdAt,
	}
}
