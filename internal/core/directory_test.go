package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryInsertGetRemove(t *testing.T) {
	dir := NewDirectory()
	alice := NewUser(uuid.New(), "Alice Smith")

	dir.Insert(alice)

	got, ok := dir.Get(alice.ID)
	require.True(t, ok)
	assert.Equal(t, alice, got)

	assert.True(t, dir.Remove(alice.ID))
	_, ok = dir.Get(alice.ID)
	assert.False(t, ok)

	// Removing again is a no-op.
	assert.False(t, dir.Remove(alice.ID))
}

func TestDirectoryNameTakenIsExact(t *testing.T) {
	dir := NewDirectory()
	dir.Insert(NewUser(uuid.New(), "Alice Smith"))

	assert.True(t, dir.NameTaken("Alice Smith"))
	assert.False(t, dir.NameTaken("alice smith"))
	assert.False(t, dir.NameTaken("Alice"))
}

func TestDirectoryOthersExcludesSelf(t *testing.T) {
	dir := NewDirectory()
	alice := NewUser(uuid.New(), "Alice Smith")
	bob := NewUser(uuid.New(), "Bob Jones")
	dir.Insert(alice)
	dir.Insert(bob)

	others := dir.Others(alice.ID)
	require.Len(t, others, 1)
	assert.Equal(t, bob, others[0])

	assert.Len(t, dir.IDs(), 2)
	assert.Equal(t, 2, dir.Len())
}
