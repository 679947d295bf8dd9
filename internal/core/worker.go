package core

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userNameRe validates trimmed join names: letters and whitespace only,
// 4 to 24 characters. Compiled once at startup.
var userNameRe = regexp.MustCompile(`^[A-Za-z\s]{4,24}$`)

const (
	requestBuffer    = 256
	subscriberBuffer = 32
)

// Worker is the single owner of the user directory and the message feed. All
// state transitions flow through one Run loop, so each request is applied and
// fanned out completely before the next one is looked at. The lock only
// guards the data against concurrent readers; it is never held across an
// emission.
type Worker struct {
	aliveInterval time.Duration
	requests      chan RequestEnvelope
	done          chan struct{}

	mu    sync.RWMutex // guards users and feed
	users *Directory
	feed  *Feed

	subMu   sync.Mutex
	subs    map[uint64]chan ResponseEnvelope
	nextSub uint64

	log *zerolog.Logger
}

// NewWorker constructs a worker. An aliveInterval of zero disables the
// heartbeat.
func NewWorker(aliveInterval time.Duration, logger *zerolog.Logger) *Worker {
	return &Worker{
		aliveInterval: aliveInterval,
		requests:      make(chan RequestEnvelope, requestBuffer),
		done:          make(chan struct{}),
		users:         NewDirectory(),
		feed:          &Feed{},
		subs:          make(map[uint64]chan ResponseEnvelope),
		log:           logger,
	}
}

// Run consumes the merged request stream until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	var tick <-chan time.Time
	if w.aliveInterval > 0 {
		ticker := time.NewTicker(w.aliveInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case envelope := <-w.requests:
			w.process(envelope)
		case <-tick:
			w.heartbeat()
		case <-ctx.Done():
			return
		}
	}
}

// Submit feeds a decoded request into the worker. Requests submitted from one
// connection in order are processed in that order. Returns once the request
// is enqueued, or immediately if the worker has stopped.
func (w *Worker) Submit(envelope RequestEnvelope) {
	select {
	case w.requests <- envelope:
	case <-w.done:
	}
}

// Requests exposes the merged request channel for the per-connection read
// pipelines to feed directly.
func (w *Worker) Requests() chan<- RequestEnvelope {
	return w.requests
}

// Disconnect removes the identity from the room. Routed through the request
// loop so the removal and its fan-out serialize with joins and posts. A no-op
// for identities that never joined.
func (w *Worker) Disconnect(clientID uuid.UUID) {
	w.Submit(RequestEnvelope{ClientID: clientID, Request: Request{Kind: RequestDisconnect}})
}

// Subscribe registers a consumer of the response stream. Every subscriber
// observes every envelope in emission order; filtering by recipient is the
// client adapter's job. The returned cancel func closes the channel.
func (w *Worker) Subscribe() (<-chan ResponseEnvelope, func()) {
	w.subMu.Lock()
	defer w.subMu.Unlock()

	id := w.nextSub
	w.nextSub++
	ch := make(chan ResponseEnvelope, subscriberBuffer)
	w.subs[id] = ch

	cancel := func() {
		w.subMu.Lock()
		defer w.subMu.Unlock()
		if sub, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (w *Worker) process(envelope RequestEnvelope) {
	switch envelope.Request.Kind {
	case RequestJoin:
		w.processJoin(envelope.ClientID, envelope.Request.Name)
	case RequestPostMessage:
		w.processPost(envelope.ClientID, envelope.Request.Text)
	case RequestDisconnect:
		w.processDisconnect(envelope.ClientID)
	default:
		w.sendError(envelope.ClientID, ErrInvalidRequest)
	}
}

func (w *Worker) processJoin(clientID uuid.UUID, name string) {
	name = strings.TrimSpace(name)

	w.mu.Lock()
	if w.users.NameTaken(name) {
		w.mu.Unlock()
		w.sendError(clientID, ErrNameExisted)
		return
	}
	if !userNameRe.MatchString(name) {
		w.mu.Unlock()
		w.sendError(clientID, ErrInvalidName)
		return
	}
	user := NewUser(clientID, name)
	w.users.Insert(user)
	others := w.users.Others(clientID)
	messages := w.feed.Messages()
	w.mu.Unlock()

	w.log.Info().Stringer("client_id", clientID).Str("name", name).Msg("user joined")

	w.sendTo(clientID, Event{Kind: EventJoined, User: user, Users: others, Messages: messages})
	w.sendToEach(others, Event{Kind: EventUserJoined, User: user})
}

func (w *Worker) processPost(clientID uuid.UUID, text string) {
	w.mu.RLock()
	user, joined := w.users.Get(clientID)
	w.mu.RUnlock()

	if !joined {
		w.sendError(clientID, ErrNotJoined)
		return
	}
	if text == "" {
		w.sendError(clientID, ErrInvalidMessage)
		return
	}

	message := NewMessage(uuid.New(), user, text, time.Now().UTC())

	w.mu.Lock()
	w.feed.Add(message)
	others := w.users.Others(clientID)
	w.mu.Unlock()

	w.sendTo(clientID, Event{Kind: EventPosted, Message: message})
	w.sendToEach(others, Event{Kind: EventUserPosted, Message: message})
}

func (w *Worker) processDisconnect(clientID uuid.UUID) {
	w.mu.Lock()
	removed := w.users.Remove(clientID)
	remaining := w.users.IDs()
	w.mu.Unlock()

	if !removed {
		return
	}

	w.log.Info().Stringer("client_id", clientID).Msg("user left")

	for _, id := range remaining {
		w.sendTo(id, Event{Kind: EventUserLeft, UserID: clientID})
	}
}

// heartbeat pings every joined user, one addressed envelope each. Cost grows
// with the number of online users per tick.
func (w *Worker) heartbeat() {
	w.mu.RLock()
	ids := w.users.IDs()
	w.mu.RUnlock()

	for _, id := range ids {
		w.sendTo(id, Event{Kind: EventAlive})
	}
}

func (w *Worker) sendError(clientID uuid.UUID, kind ErrorKind) {
	w.log.Debug().Stringer("client_id", clientID).Str("error", kind.String()).Msg("request rejected")
	w.sendTo(clientID, Event{Kind: EventError, ErrorKind: kind})
}

func (w *Worker) sendTo(clientID uuid.UUID, event Event) {
	w.publish(ResponseEnvelope{ClientID: clientID, Event: event})
}

func (w *Worker) sendToEach(users []User, event Event) {
	for _, user := range users {
		w.sendTo(user.ID, event)
	}
}

// publish hands an envelope to every subscriber. With no subscribers this is
// a no-op, not an error. A subscriber whose buffer is full misses the
// envelope rather than stalling the loop.
func (w *Worker) publish(envelope ResponseEnvelope) {
	w.subMu.Lock()
	defer w.subMu.Unlock()

	for _, sub := range w.subs {
		select {
		case sub <- envelope:
		default:
			w.log.Debug().Stringer("client_id", envelope.ClientID).Msg("dropping envelope for slow subscriber")
		}
	}
}
