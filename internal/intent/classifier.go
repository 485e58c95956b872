// Package intent maps normalized text to one of the closed set of command
// intents. Classification is a cascade: an optional model strategy is
// consulted first, then the rule tables of the detected language, then the
// other language's tables as a cross-language fallback.
package intent

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"vaani/internal/core"
	"vaani/internal/ml"
)

const (
	// ruleConfidence is reported when the detected language's own pattern
	// table matched.
	ruleConfidence = 0.9

	// crossConfidence is reported when only the other language's table
	// matched, e.g. Devanagari patterns firing on mixed input classified as
	// English-primary.
	crossConfidence = 0.7
)

// Match is a classification outcome. Source names the cascade stage that
// produced it ("ml", "rule", "cross", "none").
type Match struct {
	Intent     core.Intent
	Confidence float64
	Source     string
}

// Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	strategy ml.Strategy
	minConf  float64
	logger   *zap.Logger
}

// NewClassifier builds the cascade. A nil strategy disables the model stage.
func NewClassifier(strategy ml.Strategy, minConfidence float64, logger *zap.Logger) *Classifier {
	if strategy == nil {
		strategy = ml.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{strategy: strategy, minConf: minConfidence, logger: logger}
}

// Classify runs the cascade over normalized text. It never fails: when
// nothing matches the result is IntentUnknown at zero confidence.
func (c *Classifier) Classify(ctx context.Context, normalized string, lang core.LanguageDecision) Match {
	if pred, err := c.strategy.Predict(ctx, normalized); err != nil {
		c.logger.Debug("model strategy failed, falling back to rules",
			zap.String("strategy", c.strategy.Name()),
			zap.Error(err))
	} else if pred.Intent != core.IntentUnknown && pred.Confidence >= c.minConf {
		return Match{Intent: pred.Intent, Confidence: pred.Confidence, Source: "ml"}
	}

	primary, secondary := englishPatterns, hindiPatterns
	if lang.Primary == core.LangHindi {
		primary, secondary = hindiPatterns, englishPatterns
	}

	if intent, ok := matchTable(primary, normalized); ok {
		return Match{Intent: intent, Confidence: ruleConfidence, Source: "rule"}
	}
	if intent, ok := matchTable(secondary, normalized); ok {
		return Match{Intent: intent, Confidence: crossConfidence, Source: "cross"}
	}
	return Match{Intent: core.IntentUnknown, Source: "none"}
}

// matchTable walks intents in priority order; within one intent, patterns are
// tried in declaration order.
func matchTable(table map[core.Intent][]*regexp.Regexp, text string) (core.Intent, bool) {
	for _, intent := range PriorityOrder {
		for _, re := range table[intent] {
			if re.MatchString(text) {
				return intent, true
			}
		}
	}
	return core.IntentUnknown, false
}
