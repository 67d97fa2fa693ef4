package websocket

import (
	"context"

	"estatehub/internal/redis"
)

// RedisBridge relays room broadcasts published by peer instances into the
// local hub, so fan-out reaches sockets regardless of which instance
// accepted the originating HTTP request. The bus filters out this instance's
// own publications; local sockets are served directly by the emitter.
type RedisBridge struct {
	bus *redis.RoomBus
	hub *Hub
}

func NewRedisBridge(bus *redis.RoomBus, hub *Hub) *RedisBridge {
	return &RedisBridge{bus: bus, hub: hub}
}

func (b *RedisBridge) Run(ctx context.Context) error {
	return b.bus.Subscribe(ctx, func(room string, payload []byte) {
		b.hub.Broadcast(room, payload)
	})
}
