package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentValid(t *testing.T) {
	for _, i := range Intents {
		assert.True(t, i.Valid(), "intent: %s", i)
	}
	assert.True(t, IntentUnknown.Valid())
	assert.False(t, Intent("buy_groceries").Valid())
	assert.False(t, Intent("").Valid())
}
