package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/feedroom-server/internal/proto"
)

// Frame is one WebSocket frame as the adapter sees it. The transport layer
// pumps frames in and out; the adapter never touches the socket.
type Frame struct {
	Text bool
	Data []byte
}

// Client bridges one connection to the worker's envelope streams. It owns no
// shared state; the identity is generated at construction and tags every
// request this connection produces.
type Client struct {
	ID uuid.UUID
}

// NewClient constructs a client with a fresh connection identity.
func NewClient() *Client {
	return &Client{ID: uuid.New()}
}

// Read decodes inbound frames into identity-tagged requests. The pipeline is
// one-shot: it ends cleanly when the frame channel closes or a non-text frame
// arrives, and with an error when a frame is not valid JSON. A frame that is
// valid JSON but not a known request becomes RequestInvalid so the worker can
// answer it through the normal addressed fan-out.
func (c *Client) Read(ctx context.Context, frames <-chan Frame, requests chan<- RequestEnvelope) error {
	for {
		select {
		case frame, ok := <-frames:
			if !ok || !frame.Text {
				return nil
			}
			request, err := decodeRequest(frame.Data)
			if err != nil {
				return fmt.Errorf("decode request: %w", err)
			}
			select {
			case requests <- RequestEnvelope{ClientID: c.ID, Request: request}:
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Write filters the broadcast stream down to envelopes addressed to this
// client and serializes them as text frames. One-shot like Read: it ends when
// the response channel closes and errors on a marshal failure.
func (c *Client) Write(ctx context.Context, responses <-chan ResponseEnvelope, frames chan<- Frame) error {
	for {
		select {
		case envelope, ok := <-responses:
			if !ok {
				return nil
			}
			if envelope.ClientID != c.ID {
				continue
			}
			data, err := json.Marshal(encodeEvent(envelope.Event))
			if err != nil {
				return fmt.Errorf("encode event: %w", err)
			}
			select {
			case frames <- Frame{Text: true, Data: data}:
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func decodeRequest(data []byte) (Request, error) {
	var envelope proto.Request
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Request{}, err
	}

	switch envelope.Type {
	case proto.RequestTypeJoin:
		var join proto.JoinPayload
		if err := json.Unmarshal(envelope.Payload, &join); err != nil {
			return Request{Kind: RequestInvalid}, nil
		}
		return Request{Kind: RequestJoin, Name: join.Name}, nil
	case proto.RequestTypePostMessage:
		var post proto.PostMessagePayload
		if err := json.Unmarshal(envelope.Payload, &post); err != nil {
			return Request{Kind: RequestInvalid}, nil
		}
		return Request{Kind: RequestPostMessage, Text: post.Text}, nil
	default:
		return Request{Kind: RequestInvalid}, nil
	}
}

func encodeEvent(event Event) proto.Response {
	switch event.Kind {
	case EventAlive:
		return proto.Response{Type: proto.ResponseTypeAlive}
	case EventJoined:
		return proto.Response{
			Type: proto.ResponseTypeJoined,
			Payload: proto.JoinedPayload{
				User:       userPayload(event.User),
				OtherUsers: userPayloads(event.Users),
				Messages:   messagePayloads(event.Messages),
			},
		}
	case EventUserJoined:
		return proto.Response{
			Type:    proto.ResponseTypeUserJoined,
			Payload: proto.UserJoinedPayload{User: userPayload(event.User)},
		}
	case EventUserLeft:
		return proto.Response{
			Type:    proto.ResponseTypeUserLeft,
			Payload: proto.UserLeftPayload{ID: event.UserID},
		}
	case EventPosted:
		return proto.Response{
			Type:    proto.ResponseTypePosted,
			Payload: proto.PostedPayload{Message: messagePayload(event.Message)},
		}
	case EventUserPosted:
		return proto.Response{
			Type:    proto.ResponseTypeUserPosted,
			Payload: proto.PostedPayload{Message: messagePayload(event.Message)},
		}
	default:
		return proto.Response{
			Type:    proto.ResponseTypeError,
			Payload: event.ErrorKind.String(),
		}
	}
}

func userPayload(user User) proto.UserPayload {
	return proto.UserPayload{ID: user.ID, Name: user.Name}
}

func userPayloads(users []User) []proto.UserPayload {
	out := make([]proto.UserPayload, 0, len(users))
	for _, user := range users {
		out = append(out, userPayload(user))
	}
	return out
}

func messagePayload(message Message) proto.MessagePayload {
	return proto.MessagePayload{
		ID:           message.ID,
		User:         userPayload(message.User),
		Text:         message.Text,
		CreatedAtUtc: message.CreatedAt.UTC(),
	}
}

func messagePayloads(messages []Message) []proto.MessagePayload {
	out := make([]proto.MessagePayload, 0, len(messages))
	for _, message := range messages {
		out = append(out, messagePayload(message))
	}
	return out
}
