// Package language identifies the script mixture and primary language of a
// chat message. Detection is character-ratio based: Devanagari code points
// (U+0900-U+097F) are weighed against ASCII letters, with Latin-script Hindi
// tokens counted as a Hindi signal. Input with no recognized characters falls
// back to a trigram statistical detector and ultimately to English.
package language

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"

	"vaani/internal/core"
)

const (
	// mixedRatio is the share of each script required before an utterance
	// counts as code-switched.
	mixedRatio = 0.2

	// fallbackConfidence is reported whenever the ratio computation had
	// nothing to work with and we defaulted.
	fallbackConfidence = 0.5
)

// Detector is immutable after construction and safe for concurrent use.
type Detector struct {
	// translit is the Roman-script→Devanagari word dictionary. Only the key
	// set matters here; the normalizer owns the actual rewriting.
	translit map[string]string
}

// NewDetector builds a detector over the given transliteration dictionary.
func NewDetector(translit map[string]string) *Detector {
	return &Detector{translit: translit}
}

// Detect classifies text. It never fails: empty or unrecognizable input
// yields English at fallbackConfidence.
func (d *Detector) Detect(text string) core.LanguageDecision {
	hindi, english := countScripts(text)
	total := hindi + english

	if total == 0 {
		return d.statisticalFallback(text)
	}

	hindiRatio := float64(hindi) / float64(total)
	englishRatio := float64(english) / float64(total)

	translitCount := d.countTransliterated(text)
	mixed := (hindiRatio >= mixedRatio && englishRatio >= mixedRatio) ||
		(english > 0 && translitCount > 0)

	decision := core.LanguageDecision{Mixed: mixed}
	if hindiRatio > englishRatio {
		decision.Primary = core.LangHindi
		decision.Confidence = hindiRatio
	} else {
		decision.Primary = core.LangEnglish
		decision.Confidence = englishRatio
	}
	if mixed {
		decision.Segments = segments(text)
	}
	return decision
}

// statisticalFallback handles text with zero Devanagari or ASCII letters:
// digits, punctuation, emoji, or a third script. The trigram detector gets a
// chance to recognize Hindi written in another representation; anything else
// defaults to English with low confidence.
func (d *Detector) statisticalFallback(text string) core.LanguageDecision {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return core.LanguageDecision{Primary: core.LangEnglish, Confidence: fallbackConfidence}
	}

	info := whatlanggo.Detect(trimmed)
	if info.Lang == whatlanggo.Hin && info.IsReliable() {
		return core.LanguageDecision{Primary: core.LangHindi, Confidence: fallbackConfidence}
	}
	return core.LanguageDecision{Primary: core.LangEnglish, Confidence: fallbackConfidence}
}

// countTransliterated counts lowercase tokens present in the Roman-Hindi
// dictionary, e.g. "pichhle hafte ka report dikhao".
func (d *Detector) countTransliterated(text string) int {
	n := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if _, ok := d.translit[strings.Trim(word, ".,!?")]; ok {
			n++
		}
	}
	return n
}

func countScripts(text string) (hindi, english int) {
	for _, r := range text {
		switch {
		case isDevanagari(r):
			hindi++
		case r < 128 && unicode.IsLetter(r):
			english++
		}
	}
	return hindi, english
}

func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

// segments splits a mixed utterance into ordered same-language runs,
// token-wise: adjacent tokens of the same script merge into one segment.
func segments(text string) []core.Segment {
	var segs []core.Segment
	for _, tok := range strings.Fields(text) {
		lang := tokenLanguage(tok)
		if lang == "" {
			// Numbers and punctuation attach to the current segment.
			if len(segs) > 0 {
				segs[len(segs)-1].Text += " " + tok
			}
			continue
		}
		if len(segs) > 0 && segs[len(segs)-1].Language == lang {
			segs[len(segs)-1].Text += " " + tok
			continue
		}
		segs = append(segs, core.Segment{Language: lang, Text: tok})
	}
	return segs
}

func tokenLanguage(tok string) core.Language {
	for _, r := range tok {
		if isDevanagari(r) {
			return core.LangHindi
		}
	}
	for _, r := range tok {
		if r < 128 && unicode.IsLetter(r) {
			return core.LangEnglish
		}
	}
	return ""
}
