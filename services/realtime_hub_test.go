package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestRealtimeHubBroadcast(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		c := &WSClient{UserID: 7, Conn: conn}
		hub.Register(c)
		registered <- c
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer client.Close()
	c := <-registered

	hub.Broadcast(7, map[string]any{"kind": "scan.created", "data": map[string]any{"score": 47}})

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var msg map[string]any
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("bad payload: %v", err)
	}
	if msg["kind"] != "scan.created" {
		t.Errorf("kind = %v", msg["kind"])
	}

	// Broadcasting to a user with no connections is a no-op.
	hub.Broadcast(99, map[string]any{"kind": "noop"})

	hub.Unregister(c)
	hub.Broadcast(7, map[string]any{"kind": "after-close"})
}
