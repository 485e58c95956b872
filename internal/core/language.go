package core

// Language is an ISO 639-1 code for one of the two supported languages.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
)

// Segment is a maximal same-language run inside a mixed utterance.
type Segment struct {
	Language Language `json:"language"`
	Text     string   `json:"text"`
}

// LanguageDecision is the outcome of language identification for one message.
// It is computed exactly once per message and never mutated afterwards.
type LanguageDecision struct {
	// Primary is always set, even for mixed input.
	Primary Language `json:"primary_language"`

	// Mixed is true when the utterance carries a significant share of both
	// Devanagari and Latin script (or Latin-script Hindi tokens).
	Mixed bool `json:"is_mixed"`

	// Confidence is the winning script ratio, or a fixed low constant when
	// the statistical fallback decided.
	Confidence float64 `json:"confidence"`

	// Segments holds the ordered same-language substrings of a mixed
	// utterance. Empty for single-language input.
	Segments []Segment `json:"segments,omitempty"`
}
