package core

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedResortsOnAdd(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	author := NewUser(uuid.New(), "Dao Lam")

	feed := &Feed{}
	feed.Add(NewMessage(uuid.New(), author, "second", base.Add(time.Second)))
	feed.Add(NewMessage(uuid.New(), author, "first", base))

	messages := feed.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
}

func TestFeedStableForEqualTimestamps(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	author := NewUser(uuid.New(), "Dao Lam")

	feed := &Feed{}
	feed.Add(NewMessage(uuid.New(), author, "one", at))
	feed.Add(NewMessage(uuid.New(), author, "two", at))
	feed.Add(NewMessage(uuid.New(), author, "three", at))

	messages := feed.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Text)
	assert.Equal(t, "two", messages[1].Text)
	assert.Equal(t, "three", messages[2].Text)
}

func TestFeedSnapshotIsIndependent(t *testing.T) {
	author := NewUser(uuid.New(), "Dao Lam")

	feed := &Feed{}
	feed.Add(NewMessage(uuid.New(), author, "kept", time.Now().UTC()))

	snapshot := feed.Messages()
	snapshot[0].Text = "mutated"

	assert.Equal(t, "kept", feed.Messages()[0].Text)
	assert.Equal(t, 1, feed.Len())
}
