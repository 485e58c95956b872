package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vaani/internal/core"
)

func english() core.LanguageDecision {
	return core.LanguageDecision{Primary: core.LangEnglish, Confidence: 1}
}

func hindi() core.LanguageDecision {
	return core.LanguageDecision{Primary: core.LangHindi, Confidence: 1}
}

func mixed() core.LanguageDecision {
	return core.LanguageDecision{Primary: core.LangEnglish, Mixed: true, Confidence: 0.6}
}

func TestNormalizeEnglishCaseFold(t *testing.T) {
	n := New(Transliterations)
	got := n.Normalize("Add New Product Rice 50rs 20qty", english())
	assert.Equal(t, "add new product rice 50rs 20qty", got)
}

// English-classified input is never transliterated, so "is", "me", "to" and
// friends survive.
func TestNormalizeEnglishUntouched(t *testing.T) {
	n := New(Transliterations)
	got := n.Normalize("Is sugar available?", english())
	assert.Equal(t, "is sugar available", got)
}

func TestNormalizeTransliteration(t *testing.T) {
	n := New(Transliterations)
	cases := map[string]string{
		"chawal ka stock 100 karo":       "चावल का स्टॉक 100 करो",
		"pichhle hafte ka report dikhao": "पिछले हफ्ते का report दिखाओ",
		"mujhe sabun nahi chahiye":       "मुझे साबुन नहीं चाहिए",
	}
	for in, want := range cases {
		assert.Equal(t, want, n.Normalize(in, mixed()), "input: %s", in)
	}
}

// Preserved English words stay Latin even in mixed mode; "price" must not
// lose its inner "rice".
func TestNormalizePreservedWords(t *testing.T) {
	n := New(Transliterations)
	got := n.Normalize("rice ka price batao", mixed())
	assert.Equal(t, "rice का price बताओ", got)
}

func TestNormalizeDevanagariDigits(t *testing.T) {
	n := New(Transliterations)
	got := n.Normalize("चावल का स्टॉक १०० करो", hindi())
	assert.Equal(t, "चावल का स्टॉक 100 करो", got)
}

func TestNormalizeEmoji(t *testing.T) {
	n := New(Transliterations)
	got := n.Normalize("🍚 📦 🔄 50", hindi())
	assert.Equal(t, "चावल स्टॉक अपडेट 50", got)
}

func TestNormalizeStructuredMessage(t *testing.T) {
	n := New(Transliterations)

	got := n.Normalize("product: Rice\nstock: 20", english())
	assert.Equal(t, "update stock of rice to 20", got)

	got = n.Normalize("प्रोडक्ट: चीनी\nमात्रा: 15", hindi())
	assert.Equal(t, "चीनी का स्टॉक 15 अपडेट करो", got)
}

func TestNormalizeNoise(t *testing.T) {
	n := New(Transliterations)

	got := n.Normalize("show   my\n\norders!!", english())
	assert.Equal(t, "show my orders", got)

	got = n.Normalize("rice → 20", english())
	assert.Equal(t, "rice to 20", got)
}

func TestNormalizeEmpty(t *testing.T) {
	n := New(Transliterations)
	assert.Equal(t, "", n.Normalize("   ", english()))
	assert.Equal(t, "", n.Normalize("", hindi()))
}

// Normalization is idempotent for every language decision.
func TestNormalizeIdempotent(t *testing.T) {
	n := New(Transliterations)

	inputs := []string{
		"Add new product Rice 50rs 20qty",
		"chawal ka stock 100 karo",
		"चावल का स्टॉक १०० करो",
		"🍚 ka stock update karo",
		"product: Rice\nstock: 20",
		"मुझे साबुन नहीं चाहिए",
	}
	for _, lang := range []core.LanguageDecision{english(), hindi(), mixed()} {
		for _, in := range inputs {
			once := n.Normalize(in, lang)
			twice := n.Normalize(once, lang)
			assert.Equal(t, once, twice, "input %q lang %s mixed=%v", in, lang.Primary, lang.Mixed)
		}
	}
}
