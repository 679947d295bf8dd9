package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/feedroom-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/feed", "WebSocket address")
	name := flag.String("name", "smoke tester", "display name to join with")
	text := flag.String("text", "hello from smoke test", "message text to post")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(reqType string, payload any) error {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		return wsjson.Write(ctx, conn, proto.Request{Type: reqType, Payload: raw})
	}

	if err := send(proto.RequestTypeJoin, proto.JoinPayload{Name: *name}); err != nil {
		return fmt.Errorf("join: %w", err)
	}
	if err := send(proto.RequestTypePostMessage, proto.PostMessagePayload{Text: *text}); err != nil {
		return fmt.Errorf("post: %w", err)
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		fmt.Printf("<- %s\n", data)
	}
}
