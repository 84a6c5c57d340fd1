package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func newTestSubscriber(t *testing.T, hub *Hub) *Client {
	t.Helper()

	client := &Client{hub: hub, send: make(chan []byte, 8)}
	hub.Register(client)

	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(time.Millisecond)
	}
	return client
}

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := newTestSubscriber(t, hub)

	hub.Broadcast([]byte("ping"))
	select {
	case msg := <-client.send:
		if string(msg) != "ping" {
			t.Fatalf("message = %q, want ping", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast never arrived")
	}
}

func TestNotifierPublishesChangeEvents(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := newTestSubscriber(t, hub)

	NewNotifier(hub).EntityChanged("member", "updated", 7)

	select {
	case msg := <-client.send:
		var evt ChangeEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if evt.Type != "entity_changed" || evt.Entity != "member" || evt.Action != "updated" || evt.ID != 7 {
			t.Fatalf("event = %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("event never arrived")
	}
}
