package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	assert.Equal(t, "availability:room:12", Channel("room", 12))
	assert.Equal(t, "availability:event:3", Channel("event", 3))
}

func TestUpdateJSON(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	body, err := json.Marshal(Update{Resource: "room", ID: 7, Availability: 0, At: at})
	require.NoError(t, err)
	assert.JSONEq(t, `{"resource":"room","id":7,"availability":0,"at":"2025-03-01T10:00:00Z"}`, string(body))
}
