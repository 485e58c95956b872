// Package normalize canonicalizes chat text before matching: emoji become
// domain words, structured "key: value" messages collapse to one line,
// Devanagari digits fold to ASCII, English tokens are case-folded, and
// Latin-script Hindi is rewritten to Devanagari. Normalization is a pure
// function of (text, language decision) and is idempotent.
package normalize

import (
	"regexp"
	"sort"
	"strings"

	"vaani/internal/core"
)

// Normalizer is immutable after construction and safe for concurrent use.
type Normalizer struct {
	translit     map[string]string
	compoundKeys []string // dict keys eligible for substring matching, longest first
	emoji        *strings.Replacer
}

// New builds a normalizer over the given transliteration dictionary.
// Pass Transliterations for the stock behavior.
func New(translit map[string]string) *Normalizer {
	var keys []string
	for k := range translit {
		if len(k) >= 4 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(emojiWords)*2)
	for emoji, word := range emojiWords {
		pairs = append(pairs, emoji, " "+word+" ")
	}

	return &Normalizer{
		translit:     translit,
		compoundKeys: keys,
		emoji:        strings.NewReplacer(pairs...),
	}
}

var (
	// Structured multi-part messages like "product: Rice\nstock: 20".
	structuredLabeled = regexp.MustCompile(`(?i)(?:product|item|प्रोडक्ट|आइटम|वस्तु)\s*[:\-]\s*([^\n,]+?)\s*(?:\n|,)\s*(?:quantity|stock|मात्रा|स्टॉक)\s*[:\-]\s*([^\n]+)`)
	structuredNamed   = regexp.MustCompile(`([^\n:]+?)\s*:\s*(?:\n|,)\s*(?:quantity|stock|मात्रा|स्टॉक)\s*[:\-]\s*([^\n]+)`)
	structuredUnit    = regexp.MustCompile(`([^\n:]+?)\s*:\s*\n\s*([\d.]+\s*(?:किलो|किग्रा|kilo|kg))`)

	newlineRun = regexp.MustCompile(`\s*\n\s*`)
	// Apostrophes stay: "today's report" is matched as-is downstream.
	noiseChars    = regexp.MustCompile("[!@#$%^&*()_+=\\[\\]{};\"<>?`~]")
	arrowChars    = regexp.MustCompile(`[→➡⟶⇒⇨⟹]`)
	fancyDashes   = regexp.MustCompile(`[–—]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes text. Re-normalizing the output with the same
// language decision returns it unchanged.
func (n *Normalizer) Normalize(text string, lang core.LanguageDecision) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = n.emoji.Replace(text)
	text = collapseStructured(text)
	text = newlineRun.ReplaceAllString(text, " ")

	text = strings.ReplaceAll(text, "|", ",")
	text = arrowChars.ReplaceAllString(text, " to ")
	text = fancyDashes.ReplaceAllString(text, "-")
	text = noiseChars.ReplaceAllString(text, " ")
	text = foldDigits(text)
	text = lowerASCII(text)

	if lang.Primary == core.LangHindi || lang.Mixed {
		text = n.transliterate(text)
	}

	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// collapseStructured rewrites "key: value" multi-part messages into the
// canonical single-line edit-stock utterance of the dominant script.
func collapseStructured(text string) string {
	for _, re := range []*regexp.Regexp{structuredLabeled, structuredNamed, structuredUnit} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		product := strings.TrimSpace(m[1])
		quantity := strings.TrimSpace(m[2])
		if hasDevanagari(text) {
			return product + " का स्टॉक " + quantity + " अपडेट करो"
		}
		return "update stock of " + product + " to " + quantity
	}
	return text
}

// transliterate rewrites Latin-script Hindi tokens to Devanagari, word by
// word, with a substring fallback for compound tokens ("stockupdate").
func (n *Normalizer) transliterate(text string) string {
	fields := strings.Fields(text)
	for i, field := range fields {
		word := strings.Trim(field, ",.:;")
		if word == "" || englishPreserve[word] {
			continue
		}
		if dev, ok := n.translit[word]; ok {
			fields[i] = strings.Replace(field, word, dev, 1)
			continue
		}
		fields[i] = n.transliterateCompound(field, word)
	}
	return strings.Join(fields, " ")
}

func (n *Normalizer) transliterateCompound(field, word string) string {
	if !isASCIIWord(word) {
		return field
	}
	// Never chew on tokens that embed a preserved English word ("price"
	// contains no dictionary key, but guard the general case).
	for preserved := range englishPreserve {
		if strings.Contains(word, preserved) {
			return field
		}
	}
	rewritten := word
	for _, key := range n.compoundKeys {
		if strings.Contains(rewritten, key) {
			rewritten = strings.ReplaceAll(rewritten, key, n.translit[key])
		}
	}
	if rewritten == word {
		return field
	}
	return strings.Replace(field, word, rewritten, 1)
}

func foldDigits(text string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := devanagariDigits[r]; ok {
			return d
		}
		return r
	}, text)
}

// lowerASCII case-folds English letters only; Devanagari has no case.
func lowerASCII(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, text)
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r >= 128 {
			return false
		}
	}
	return true
}

func hasDevanagari(s string) bool {
	for _, r := range s {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
