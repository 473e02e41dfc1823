package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":        1,
		"totalCost": "118500.00",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCalculated, EntityTypeProjection, payload)
	after := time.Now()

	assert.Equal(t, "projection.calculated", evt.Type)
	assert.Equal(t, EntityTypeProjection, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_JSON_Serialization(t *testing.T) {
	fixedTime := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	payload := map[string]interface{}{
		"id":         float64(1),
		"postalCode": "94102",
	}

	evt := Event{
		Type:      "profile.updated",
		Entity:    EntityTypeProfile,
		Payload:   payload,
		Timestamp: fixedTime,
	}

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded Event
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, evt.Type, decoded.Type)
	assert.Equal(t, evt.Entity, decoded.Entity)
	assert.Equal(t, fixedTime.UTC(), decoded.Timestamp.UTC())

	// Payload should be preserved
	decodedPayload, ok := decoded.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), decodedPayload["id"])
	assert.Equal(t, "94102", decodedPayload["postalCode"])
}

func TestEvent_ToJSON(t *testing.T) {
	payload := map[string]interface{}{
		"id": float64(42),
	}

	evt := NewEvent(EventTypeUpdated, EntityTypeProfile, payload)

	data, err := evt.ToJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// Verify it's valid JSON
	var decoded map[string]interface{}
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, "profile.updated", decoded["type"])
	assert.Equal(t, "profile", decoded["entity"])
	assert.NotNil(t, decoded["payload"])
	assert.NotNil(t, decoded["timestamp"])
}

func TestEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{
		"id": float64(7),
	}

	t.Run("ProfileUpdated", func(t *testing.T) {
		evt := ProfileUpdated(payload)
		assert.Equal(t, "profile.updated", evt.Type)
		assert.Equal(t, EntityTypeProfile, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})

	t.Run("ProjectionCalculated", func(t *testing.T) {
		evt := ProjectionCalculated(payload)
		assert.Equal(t, "projection.calculated", evt.Type)
		assert.Equal(t, EntityTypeProjection, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})

	t.Run("ExportCreated", func(t *testing.T) {
		evt := ExportCreated(payload)
		assert.Equal(t, "export.created", evt.Type)
		assert.Equal(t, EntityTypeExport, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})
}
