package proto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDecode(t *testing.T) {
	var request Request
	require.NoError(t, json.Unmarshal([]byte(`{"type":"join","payload":{"name":"Dao Lam"}}`), &request))
	assert.Equal(t, RequestTypeJoin, request.Type)

	var join JoinPayload
	require.NoError(t, json.Unmarshal(request.Payload, &join))
	assert.Equal(t, "Dao Lam", join.Name)
}

func TestResponseAliveOmitsPayload(t *testing.T) {
	data, err := json.Marshal(Response{Type: ResponseTypeAlive})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"alive"}`, string(data))
}

func TestResponseErrorCarriesKindString(t *testing.T) {
	data, err := json.Marshal(Response{Type: ResponseTypeError, Payload: "nameExisted"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"error","payload":"nameExisted"}`, string(data))
}

func TestResponsePostedWireShape(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	msgID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	data, err := json.Marshal(Response{
		Type: ResponseTypePosted,
		Payload: PostedPayload{
			Message: MessagePayload{
				ID:           msgID,
				User:         UserPayload{ID: userID, Name: "Dao Lam"},
				Text:         "hello",
				CreatedAtUtc: at,
			},
		},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "posted",
		"payload": {
			"message": {
				"id": "22222222-2222-2222-2222-222222222222",
				"user": {"id": "11111111-1111-1111-1111-111111111111", "name": "Dao Lam"},
				"text": "hello",
				"createdAtUtc": "2026-03-01T12:00:00Z"
			}
		}
	}`, string(data))
}

func TestResponseJoinedWireShape(t *testing.T) {
	self := UserPayload{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Dao Lam"}
	other := UserPayload{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Alice Smith"}

	data, err := json.Marshal(Response{
		Type: ResponseTypeJoined,
		Payload: JoinedPayload{
			User:       self,
			OtherUsers: []UserPayload{other},
			Messages:   []MessagePayload{},
		},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "joined",
		"payload": {
			"user": {"id": "11111111-1111-1111-1111-111111111111", "name": "Dao Lam"},
			"otherUsers": [{"id": "33333333-3333-3333-3333-333333333333", "name": "Alice Smith"}],
			"messages": []
		}
	}`, string(data))
}
