// Package ml holds the optional model-backed intent strategy. The rule
// cascade works without it; when a strategy is wired in, its prediction is
// consulted first and accepted only above the configured confidence floor.
package ml

import (
	"context"

	"vaani/internal/core"
)

// Prediction is one intent guess with the model's own confidence.
type Prediction struct {
	Intent     core.Intent
	Confidence float64
}

// Strategy predicts an intent for normalized text. Implementations must be
// safe for concurrent use. An error means the strategy could not answer and
// the caller should fall through to rules; it is never fatal to a parse.
type Strategy interface {
	Predict(ctx context.Context, text string) (Prediction, error)
	Name() string
}

// Noop always reports unknown at zero confidence. It is the default strategy
// so the classifier never needs a nil check.
type Noop struct{}

func (Noop) Predict(context.Context, string) (Prediction, error) {
	return Prediction{Intent: core.IntentUnknown}, nil
}

func (Noop) Name() string { return "noop" }
