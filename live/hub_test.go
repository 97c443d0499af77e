package live

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: roomAdmin,
	}

	hub.register <- client

	msg := outboundPayload{Action: "submitted", EventID: "abc123", Title: "Test Night"}
	data, _ := json.Marshal(msg)
	hub.broadcast <- broadcastMsg{Room: roomAdmin, Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubBroadcastSkipsOtherRooms(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "elsewhere",
	}
	hub.register <- client

	hub.broadcast <- broadcastMsg{Room: roomAdmin, Data: []byte(`{"action":"approved"}`)}

	select {
	case got := <-client.Send:
		t.Fatalf("unexpected message %s", got)
	case <-time.After(100 * time.Millisecond):
	}
}
