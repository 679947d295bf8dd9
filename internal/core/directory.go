package core

import "github.com/google/uuid"

// Directory is the set of currently joined users keyed by connection
// identity. Like Feed it carries no locking of its own; the worker guards
// both under one lock.
type Directory struct {
	users map[uuid.UUID]User
}

// NewDirectory constructs an empty directory.
func NewDirectory() *Directory {
	return &Directory{users: make(map[uuid.UUID]User)}
}

// Insert adds a user under its connection identity.
func (d *Directory) Insert(user User) {
	d.users[user.ID] = user
}

// Remove deletes the identity. Returns true if it was present.
func (d *Directory) Remove(id uuid.UUID) bool {
	if _, ok := d.users[id]; !ok {
		return false
	}
	delete(d.users, id)
	return true
}

// Get looks up the user joined under the identity.
func (d *Directory) Get(id uuid.UUID) (User, bool) {
	user, ok := d.users[id]
	return user, ok
}

// NameTaken reports whether any joined user holds the exact name.
func (d *Directory) NameTaken(name string) bool {
	for _, user := range d.users {
		if user.Name == name {
			return true
		}
	}
	return false
}

// Others returns every joined user except the given identity.
func (d *Directory) Others(id uuid.UUID) []User {
	out := make([]User, 0, len(d.users))
	for _, user := range d.users {
		if user.ID != id {
			out = append(out, user)
		}
	}
	return out
}

// IDs returns the identities of every joined user.
func (d *Directory) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(d.users))
	for id := range d.users {
		out = append(out, id)
	}
	return out
}

// Len reports the number of joined users.
func (d *Directory) Len() int {
	return len(d.users)
}
