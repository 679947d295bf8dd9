package core

import "github.com/google/uuid"

// User is a joined chat participant. The ID is the connection identity the
// user joined under; the record is created on join and removed on disconnect,
// never mutated in between.
type User struct {
	ID   uuid.UUID
	Name string
}

// NewUser constructs a user bound to a connection identity.
func NewUser(id uuid.UUID, name string) User {
	return User{ID: id, Name: name}
}
