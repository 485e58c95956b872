package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaani/internal/core"
	"vaani/internal/normalize"
)

func newDetector() *Detector {
	return NewDetector(normalize.Transliterations)
}

func TestDetectEnglish(t *testing.T) {
	d := newDetector()

	dec := d.Detect("show me my inventory")
	assert.Equal(t, core.LangEnglish, dec.Primary)
	assert.False(t, dec.Mixed)
	assert.Equal(t, 1.0, dec.Confidence)
}

func TestDetectHindi(t *testing.T) {
	d := newDetector()

	dec := d.Detect("मेरे प्रोडक्ट दिखाओ")
	assert.Equal(t, core.LangHindi, dec.Primary)
	assert.False(t, dec.Mixed)
	assert.Equal(t, 1.0, dec.Confidence)
}

func TestDetectMixedScripts(t *testing.T) {
	d := newDetector()

	dec := d.Detect("stock दिखाओ")
	assert.True(t, dec.Mixed)
	require.NotEmpty(t, dec.Segments)
}

// Latin-script Hindi counts as a Hindi signal even with zero Devanagari.
func TestDetectTransliteratedHindi(t *testing.T) {
	d := newDetector()

	dec := d.Detect("chawal ka stock update karo")
	assert.True(t, dec.Mixed)
	assert.Equal(t, core.LangEnglish, dec.Primary)
}

func TestDetectEmptyFallsBack(t *testing.T) {
	d := newDetector()

	dec := d.Detect("")
	assert.Equal(t, core.LangEnglish, dec.Primary)
	assert.Equal(t, 0.5, dec.Confidence)

	dec = d.Detect("12345 !!!")
	assert.Equal(t, core.LangEnglish, dec.Primary)
	assert.Equal(t, 0.5, dec.Confidence)
}

func TestDetectSegments(t *testing.T) {
	d := newDetector()

	dec := d.Detect("मुझे inventory दिखाओ अभी")
	require.True(t, dec.Mixed)
	require.Len(t, dec.Segments, 3)

	assert.Equal(t, core.LangHindi, dec.Segments[0].Language)
	assert.Equal(t, "मुझे", dec.Segments[0].Text)
	assert.Equal(t, core.LangEnglish, dec.Segments[1].Language)
	assert.Equal(t, "inventory", dec.Segments[1].Text)
	assert.Equal(t, core.LangHindi, dec.Segments[2].Language)
	assert.Equal(t, "दिखाओ अभी", dec.Segments[2].Text)
}

// Numbers attach to the surrounding segment instead of splitting it.
func TestDetectSegmentsNumbers(t *testing.T) {
	d := newDetector()

	dec := d.Detect("rice का स्टॉक 100 करो")
	require.True(t, dec.Mixed)
	require.Len(t, dec.Segments, 2)
	assert.Equal(t, "का स्टॉक 100 करो", dec.Segments[1].Text)
}
