package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/feedroom-server/internal/core"
)

// WSHandler upgrades HTTP connections and bridges them to the worker: it
// pumps raw frames between the socket and the client adapter's two pipelines,
// and tears everything down as soon as either direction ends.
type WSHandler struct {
	worker       *core.Worker
	maxFrameSize int64
	log          *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(worker *core.Worker, maxFrameSize int64, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{worker: worker, maxFrameSize: maxFrameSize, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")
	conn.SetReadLimit(h.maxFrameSize)

	client := core.NewClient()
	responses, unsubscribe := h.worker.Subscribe()
	defer h.worker.Disconnect(client.ID)
	defer unsubscribe()

	h.log.Info().Stringer("client_id", client.ID).Msg("client connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	inbound := make(chan core.Frame)
	outbound := make(chan core.Frame)

	errCh := make(chan error, 4)
	go func() {
		errCh <- h.pumpInbound(ctx, conn, inbound)
	}()
	go func() {
		errCh <- client.Read(ctx, inbound, h.worker.Requests())
	}()
	go func() {
		errCh <- client.Write(ctx, responses, outbound)
	}()
	go func() {
		errCh <- h.pumpOutbound(ctx, conn, outbound)
	}()

	err = <-errCh
	cancel() // stop the remaining goroutines
	for i := 0; i < 3; i++ {
		<-errCh
	}

	h.log.Info().Stringer("client_id", client.ID).Msg("client disconnected")

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

// pumpInbound feeds raw frames to the client adapter. Closing the frame
// channel on return lets the adapter's read pipeline finish cleanly.
func (h *WSHandler) pumpInbound(ctx context.Context, conn *websocket.Conn, frames chan<- core.Frame) error {
	defer close(frames)

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		frame := core.Frame{Text: typ == websocket.MessageText, Data: data}
		select {
		case frames <- frame:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *WSHandler) pumpOutbound(ctx context.Context, conn *websocket.Conn, frames <-chan core.Frame) error {
	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return nil
			}
			if err := conn.Write(ctx, websocket.MessageText, frame.Data); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
