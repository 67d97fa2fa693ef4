package redis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RoomChannelPrefix namespaces room fan-out messages on the redis bus.
const RoomChannelPrefix = "room:"

// RoomBus fans room payloads out across instances. Every published message
// is tagged with the publishing instance's origin id, and Subscribe drops
// messages carrying its own origin: the emitting instance delivers to its
// local sockets directly, so a room event reaches each socket exactly once.
type RoomBus struct {
	client *redis.Client
	origin string
}

func NewRoomBus(client *redis.Client) *RoomBus {
	return &RoomBus{client: client, origin: uuid.New().String()}
}

// roomMessage is the wire wrapper on the bus; Payload is the client-facing
// envelope, untouched.
type roomMessage struct {
	Origin  string          `json:"origin"`
	Payload json.RawMessage `json:"payload"`
}

func (b *RoomBus) Publish(ctx context.Context, room string, payload []byte) error {
	data, err := json.Marshal(roomMessage{Origin: b.origin, Payload: payload})
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, RoomChannelPrefix+room, data).Err()
}

// Subscribe relays peer-originated room payloads into the handler until the
// context is cancelled or the subscription fails.
func (b *RoomBus) Subscribe(ctx context.Context, handler func(room string, payload []byte)) error {
	sub := b.client.PSubscribe(ctx, RoomChannelPrefix+"*")
	defer sub.Close()

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			return err
		}
		b.dispatch(msg.Channel, []byte(msg.Payload), handler)
	}
}

func (b *RoomBus) dispatch(channel string, data []byte, handler func(room string, payload []byte)) {
	var m roomMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return
	}
	if m.Origin == b.origin {
		return
	}
	handler(strings.TrimPrefix(channel, RoomChannelPrefix), m.Payload)
}
