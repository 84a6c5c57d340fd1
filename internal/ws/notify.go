package ws

import (
	"encoding/json"
	"time"
)

// ChangeEvent is the frame pushed to change-feed subscribers after every
// successful mutation.
type ChangeEvent struct {
	Type      string `json:"type"`
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the usecase layer's change notifications.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) EntityChanged(entity, action string, id int64) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ChangeEvent{
		Type:      "entity_changed",
		Entity:    entity,
		Action:    action,
		ID:        id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
