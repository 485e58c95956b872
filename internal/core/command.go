package core

import (
	"time"

	"github.com/google/uuid"
)

// Status is the terminal state of the parse state machine.
type Status string

const (
	// StatusSuccess: a concrete intent with every required entity present.
	StatusSuccess Status = "success"

	// StatusUnknown: no intent resolved, or a negation short-circuit.
	StatusUnknown Status = "unknown"

	// StatusMissingEntity: intent recognized but required fields are absent;
	// Missing names them so the caller can ask a clarifying question.
	StatusMissingEntity Status = "missing_entity"
)

// RawMessage is the caller-owned input envelope. The engine only reads Text;
// Sender and Timestamp pass through for the caller's own bookkeeping.
type RawMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// NewRawMessage wraps text with a fresh ID and the current time.
func NewRawMessage(sender, text string) RawMessage {
	return RawMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Timestamp: time.Now().UTC(),
		Text:      text,
	}
}

// ParsedCommand is the immutable result of one engine invocation.
//
// Invariants:
//   - Status == StatusSuccess implies Intent != IntentUnknown and all fields
//     required by that intent's variant are present.
//   - HasNegation implies Intent == IntentUnknown and Entities == nil.
//   - Language.Primary is always set, even when Language.Mixed is true.
type ParsedCommand struct {
	RawText        string           `json:"raw_text"`
	NormalizedText string           `json:"normalized_text"`
	Language       LanguageDecision `json:"language"`
	Intent         Intent           `json:"intent"`
	Entities       EntitySet        `json:"entities,omitempty"`
	Confidence     float64          `json:"confidence"`
	HasNegation    bool             `json:"has_negation"`
	Status         Status           `json:"status"`

	// Missing names the required entity fields that could not be extracted.
	// Only set when Status == StatusMissingEntity.
	Missing []string `json:"missing,omitempty"`
}
