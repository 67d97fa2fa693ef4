package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Parallel()

	id := NewID()
	require.True(t, strings.HasPrefix(id, IDPrefix))
	require.Len(t, id, len(IDPrefix)+32)
}

func TestNewIDUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate chat id %s", id)
		seen[id] = struct{}{}
	}
}
