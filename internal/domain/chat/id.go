package chat

import (
	"crypto/rand"
	"encoding/hex"
)

// IDPrefix marks chat identifiers in URLs and room names.
const IDPrefix = "chat_"

// NewID returns a fresh opaque chat identifier. 16 random bytes keep the
// collision probability negligible without coordinating with the store.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic("chat: crypto/rand unavailable: " + err.Error())
	}
	return IDPrefix + hex.EncodeToString(buf)
}
