// Package broadcast is the realtime fan-out gateway. Delivery is a
// best-effort side effect of the operations that use it; it is never part of
// their success contract.
package broadcast

import (
	"context"
	"encoding/json"
	"time"

	"estatehub/internal/redis"
	"estatehub/internal/websocket"
	"estatehub/pkg/logger"
)

// EventGetMessage is emitted to a chat room whenever a message is stored.
const EventGetMessage = "getMessage"

// Envelope is the wire shape of a room event.
type Envelope struct {
	Event   string      `json:"event"`
	ChatID  string      `json:"chatId"`
	Message interface{} `json:"message"`
}

type Gateway interface {
	// EmitToRoom fans the envelope out to every socket joined to the room.
	// It never blocks on delivery and never reports delivery failure.
	EmitToRoom(ctx context.Context, room string, env Envelope)
}

// HubGateway broadcasts through the local hub and republishes on the room
// bus so peer instances reach their own sockets. The bus tags publications
// with this instance's origin and the local bridge drops them, so sockets
// here never see the event a second time.
type HubGateway struct {
	hub *websocket.Hub
	bus *redis.RoomBus
	log *logger.Logger
}

func NewHubGateway(hub *websocket.Hub, bus *redis.RoomBus, log *logger.Logger) *HubGateway {
	return &HubGateway{hub: hub, bus: bus, log: log}
}

func (g *HubGateway) EmitToRoom(ctx context.Context, room string, env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		if g.log != nil {
			g.log.Errorf("broadcast: marshal envelope for room %s: %s", room, err)
		}
		return
	}

	g.hub.Broadcast(room, payload)

	if g.bus == nil {
		return
	}
	// The publish is detached from the request lifecycle; the HTTP response
	// does not wait for it.
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.bus.Publish(pubCtx, room, payload); err != nil && g.log != nil {
			g.log.Warnf("broadcast: redis publish for room %s: %s", room, err)
		}
	}()
}
