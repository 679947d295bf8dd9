package core

import "sort"

// Feed is the append-only, timestamp-ordered log of posted messages. It has
// no locking of its own; the worker guards it together with the directory.
type Feed struct {
	messages []Message
}

// Add inserts a message and re-establishes CreatedAt ordering. The sort is
// stable so messages sharing a timestamp keep their insertion order.
func (f *Feed) Add(message Message) {
	f.messages = append(f.messages, message)
	sort.SliceStable(f.messages, func(i, j int) bool {
		return f.messages[i].CreatedAt.Before(f.messages[j].CreatedAt)
	})
}

// Messages returns a snapshot of the feed in order.
func (f *Feed) Messages() []Message {
	out := make([]Message, len(f.messages))
	copy(out, f.messages)
	return out
}

// Len reports the number of messages in the feed.
func (f *Feed) Len() int {
	return len(f.messages)
}
