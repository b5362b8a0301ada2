package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_BroadcastWithoutClients(t *testing.T) {
	h := NewHub()
	assert.Equal(t, 0, h.ClientCount())
	assert.NotPanics(t, func() {
		h.Broadcast("analytics_event", map[string]string{"eventType": "page_view"})
	})
}
