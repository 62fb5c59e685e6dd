package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus_normalizesCase(t *testing.T) {
	for _, raw := range []string{"received", "RECEIVED", "Received", "  received  "} {
		status, err := ParseOrderStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, OrderStatusReceived, status)
	}
}

func TestParseOrderStatus_rejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "Delivered", "pend ing", "Cancelled"} {
		_, err := ParseOrderStatus(raw)
		assert.Error(t, err, raw)
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusShipped.IsValid())
	assert.True(t, OrderStatusReceived.IsValid())
	assert.False(t, OrderStatus("received").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestParseAlertStatus(t *testing.T) {
	status, err := ParseAlertStatus("resolved")
	require.NoError(t, err)
	assert.Equal(t, AlertStatusResolved, status)

	_, err = ParseAlertStatus("closed")
	assert.Error(t, err)
}
