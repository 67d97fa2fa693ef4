package redis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeRoomMessage(t *testing.T, origin string, payload []byte) []byte {
	t.Helper()
	data, err := json.Marshal(roomMessage{Origin: origin, Payload: payload})
	require.NoError(t, err)
	return data
}

func TestRoomBusSkipsSelfOriginatedMessages(t *testing.T) {
	t.Parallel()

	bus := NewRoomBus(nil)
	payload := []byte(`{"event":"getMessage","chatId":"chat_abc123"}`)

	var calls int
	handler := func(room string, p []byte) { calls++ }

	// The bus's own publication must not be delivered back locally; the
	// emitter already served its sockets directly.
	bus.dispatch(RoomChannelPrefix+"chat_abc123", encodeRoomMessage(t, bus.origin, payload), handler)
	require.Zero(t, calls)
}

func TestRoomBusDeliversPeerMessages(t *testing.T) {
	t.Parallel()

	bus := NewRoomBus(nil)
	payload := []byte(`{"event":"getMessage","chatId":"chat_abc123"}`)

	var gotRoom string
	var gotPayload []byte
	bus.dispatch(RoomChannelPrefix+"chat_abc123",
		encodeRoomMessage(t, "peer-instance", payload),
		func(room string, p []byte) {
			gotRoom = room
			gotPayload = p
		})

	require.Equal(t, "chat_abc123", gotRoom)
	require.JSONEq(t, string(payload), string(gotPayload))
}

func TestRoomBusDropsMalformedMessages(t *testing.T) {
	t.Parallel()

	bus := NewRoomBus(nil)

	var calls int
	bus.dispatch(RoomChannelPrefix+"chat_abc123", []byte("not json"), func(string, []byte) { calls++ })
	require.Zero(t, calls)
}

func TestRoomBusOriginsAreDistinct(t *testing.T) {
	t.Parallel()

	a := NewRoomBus(nil)
	b := NewRoomBus(nil)
	require.NotEqual(t, a.origin, b.origin)
}
