package core

import "github.com/google/uuid"

// EventKind is a notification the worker emits to clients.
type EventKind int

const (
	// EventError reports a rejected request to the offending client.
	EventError EventKind = iota
	// EventAlive is the periodic heartbeat.
	EventAlive
	// EventJoined confirms a join to the joining client, with the current
	// room snapshot.
	EventJoined
	// EventUserJoined notifies other clients about a new participant.
	EventUserJoined
	// EventUserLeft notifies remaining clients that a participant left.
	EventUserLeft
	// EventPosted confirms a post to its author.
	EventPosted
	// EventUserPosted delivers a post to every other participant.
	EventUserPosted
)

// Event describes what happened in the room. Which fields are set depends on
// the kind: Joined carries User, Users and Messages; UserJoined carries User;
// UserLeft carries UserID; Posted/UserPosted carry Message; Error carries
// ErrorKind.
type Event struct {
	Kind      EventKind
	User      User
	UserID    uuid.UUID
	Users     []User
	Messages  []Message
	Message   Message
	ErrorKind ErrorKind
}

// ResponseEnvelope tags an event with the connection identity it is intended
// for. Every subscriber sees every envelope and keeps only its own.
type ResponseEnvelope struct {
	ClientID uuid.UUID
	Event    Event
}
