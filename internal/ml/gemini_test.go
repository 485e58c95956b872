package ml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaani/internal/core"
)

func TestParseReply(t *testing.T) {
	p, err := parseReply("edit_stock 0.92")
	require.NoError(t, err)
	assert.Equal(t, core.IntentEditStock, p.Intent)
	assert.Equal(t, 0.92, p.Confidence)

	// Trailing chatter after the first line is tolerated.
	p, err = parseReply("get_orders 0.8\nbecause the message mentions orders")
	require.NoError(t, err)
	assert.Equal(t, core.IntentGetOrders, p.Intent)

	p, err = parseReply("  unknown 0.1  ")
	require.NoError(t, err)
	assert.Equal(t, core.IntentUnknown, p.Intent)
}

func TestParseReplyMalformed(t *testing.T) {
	for _, reply := range []string{
		"",
		"edit_stock",
		"edit_stock high",
		"edit_stock 1.5",
		"edit_stock -0.2",
		"buy_groceries 0.9",
		"the intent is edit_stock with confidence 0.9",
	} {
		_, err := parseReply(reply)
		assert.Error(t, err, "reply: %q", reply)
	}
}

func TestNoop(t *testing.T) {
	p, err := Noop{}.Predict(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, core.IntentUnknown, p.Intent)
	assert.Zero(t, p.Confidence)
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-2.0-flash", 0)
	assert.Error(t, err)
}
