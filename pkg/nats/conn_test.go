package nats

import (
	"testing"
	"time"

	"eveshield-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := encode(events.BaseEvent{
		Type:       events.ReportSubmitted,
		Data:       map[string]interface{}{"report_id": "abc", "type": "physical"},
		OccurredAt: at,
	})
	require.NoError(t, err)

	got, err := decode("events.REPORT_SUBMITTED", raw)
	require.NoError(t, err)
	assert.Equal(t, events.ReportSubmitted, got.EventType())
	assert.True(t, at.Equal(got.Timestamp()))
	assert.Equal(t, "abc", got.Payload()["report_id"])
}

func TestDecodeBarePayloadTakesTypeFromSubject(t *testing.T) {
	got, err := decode("events.USER_REGISTERED", []byte(`{"user_id":"u1"}`))
	require.NoError(t, err)

	assert.Equal(t, events.UserRegistered, got.EventType())
	assert.Equal(t, "u1", got.Payload()["user_id"])
	assert.False(t, got.Timestamp().IsZero())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := decode("events.X", []byte("not json"))
	assert.Error(t, err)
}
