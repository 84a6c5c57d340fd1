package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Handler upgrades /ws/changes requests into change-feed subscriptions.
type Handler struct {
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// feedHello is the first frame every subscriber receives, confirming the
// feed is live before any mutation arrives.
type feedHello struct {
	Type       string `json:"type"`
	ServerTime string `json:"server_time"`
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The feed carries the same data as the public read endpoints,
			// so any origin may subscribe.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) HandleChangesWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandlerFunc(h.subscribe)(c)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("ws upgrade failed | remote=%s error=%v", r.RemoteAddr, err)
		}
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()

	hello := feedHello{Type: "feed_connected", ServerTime: time.Now().UTC().Format(time.RFC3339)}
	if b, err := json.Marshal(hello); err == nil {
		select {
		case client.send <- b:
		default:
		}
	}
}
