// Package parser wires the pipeline stages into the command interpretation
// engine: language identification, normalization, negation screening, intent
// classification, and entity extraction, ending in a command envelope.
package parser

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vaani/internal/config"
	"vaani/internal/core"
	"vaani/internal/entity"
	"vaani/internal/intent"
	"vaani/internal/language"
	"vaani/internal/ml"
	"vaani/internal/negation"
	"vaani/internal/normalize"
)

// Engine turns one chat message into a ParsedCommand. It holds no mutable
// state after construction: Parse is a pure function of its input, and one
// Engine may serve any number of goroutines.
type Engine struct {
	detector   *language.Detector
	normalizer *normalize.Normalizer
	classifier *intent.Classifier
	extractor  *entity.Extractor
	logger     *zap.Logger
}

// Option customizes engine construction.
type Option func(*options)

type options struct {
	strategy ml.Strategy
	logger   *zap.Logger
	now      func() time.Time
}

// WithStrategy wires a model-backed intent strategy ahead of the rule
// cascade.
func WithStrategy(s ml.Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithLogger sets the pipeline trace logger. Default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock pins the engine's notion of "now" for date resolution. Tests use
// this; production leaves it at time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New builds an engine from an immutable configuration snapshot.
func New(cfg config.Config, opts ...Option) *Engine {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		detector:   language.NewDetector(normalize.Transliterations),
		normalizer: normalize.New(normalize.Transliterations),
		classifier: intent.NewClassifier(o.strategy, cfg.ML.MinConfidence, o.logger),
		extractor:  entity.NewExtractor(cfg.Entities, o.now),
		logger:     o.logger,
	}
}

// DetectLanguage exposes the language identification stage on its own.
func (e *Engine) DetectLanguage(text string) core.LanguageDecision {
	return e.detector.Detect(text)
}

// Parse runs the full pipeline over one message. It never fails: every
// outcome, including empty input and refusals, is a well-formed envelope.
func (e *Engine) Parse(ctx context.Context, text string) core.ParsedCommand {
	lang := e.detector.Detect(text)
	normalized := e.normalizer.Normalize(text, lang)

	e.logger.Debug("normalized input",
		zap.String("raw", text),
		zap.String("normalized", normalized),
		zap.String("language", string(lang.Primary)),
		zap.Bool("mixed", lang.Mixed))

	out := core.ParsedCommand{
		RawText:        text,
		NormalizedText: normalized,
		Language:       lang,
		Intent:         core.IntentUnknown,
		Status:         core.StatusUnknown,
	}

	if normalized == "" {
		return out
	}

	if negation.Detect(normalized) {
		out.HasNegation = true
		e.logger.Debug("negation short-circuit", zap.String("normalized", normalized))
		return out
	}

	match := e.classifier.Classify(ctx, normalized, lang)
	e.logger.Debug("classified intent",
		zap.String("intent", match.Intent.String()),
		zap.Float64("confidence", match.Confidence),
		zap.String("source", match.Source))

	out.Intent = match.Intent
	out.Confidence = match.Confidence
	if match.Intent == core.IntentUnknown {
		return out
	}

	entities, missing := e.extractor.Extract(match.Intent, normalized)
	out.Entities = entities
	if len(missing) > 0 {
		out.Status = core.StatusMissingEntity
		out.Missing = missing
		return out
	}

	out.Status = core.StatusSuccess
	return out
}

// ParseMessage is the envelope-level entry point for transport callers.
func (e *Engine) ParseMessage(ctx context.Context, msg core.RawMessage) core.ParsedCommand {
	return e.Parse(ctx, msg.Text)
}
