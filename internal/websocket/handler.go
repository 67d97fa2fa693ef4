package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Client-to-server room control events.
const (
	EventJoinChat  = "joinChat"
	EventLeaveChat = "leaveChat"
)

// clientEvent is the inbound frame: {"event":"joinChat","chatId":"chat_..."}
type clientEvent struct {
	Event  string `json:"event"`
	ChatID string `json:"chatId"`
}

type Handler struct {
	hub *Hub
	log *logger.Logger
}

func NewHandler(hub *Hub, log *logger.Logger) *Handler {
	return &Handler{hub: hub, log: log}
}

// Connect upgrades the request and serves the room membership protocol.
// Clients join and leave chat rooms explicitly; nothing is auto-subscribed
// from the persisted membership table.
func (h *Handler) Connect(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := NewClient(conn)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.hub.Register(client)
	go client.WriteLoop(ctx)

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		var ev clientEvent
		if err := json.Unmarshal(raw, &ev); err != nil || ev.ChatID == "" {
			continue
		}
		switch ev.Event {
		case EventJoinChat:
			h.hub.Join(client, ev.ChatID)
		case EventLeaveChat:
			h.hub.Leave(client, ev.ChatID)
		default:
			if h.log != nil {
				h.log.Warnf("unknown websocket event %q from client %s", ev.Event, client.ID)
			}
		}
	}

	h.hub.Unregister(client)
}
