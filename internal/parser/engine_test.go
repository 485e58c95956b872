package parser

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"vaani/internal/config"
	"vaani/internal/core"
)

func TestMain(m *testing.M) {
	// The genai dependency pulls in opencensus, whose stats worker starts at
	// package init and never exits.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

var fixedNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(config.Default(), WithClock(func() time.Time { return fixedNow }))
}

func TestParseAddProductEnglish(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "Add new product Rice 50rs 20qty")

	require.Equal(t, core.StatusSuccess, cmd.Status)
	assert.Equal(t, core.IntentAddProduct, cmd.Intent)
	assert.Equal(t, core.LangEnglish, cmd.Language.Primary)
	assert.Equal(t, 0.9, cmd.Confidence)

	got := cmd.Entities.(core.AddProduct)
	assert.Equal(t, "rice", got.Name)
	require.NotNil(t, got.Price)
	require.NotNil(t, got.Stock)
	assert.Equal(t, 50, *got.Price)
	assert.Equal(t, 20, *got.Stock)
}

// Comma-delimited attributes may come in any order after the name.
func TestParseAddProductDelimited(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "add product fan, ₹500, 3 qty")

	require.Equal(t, core.StatusSuccess, cmd.Status)
	require.Equal(t, core.IntentAddProduct, cmd.Intent)

	got := cmd.Entities.(core.AddProduct)
	assert.Equal(t, "fan", got.Name)
	require.NotNil(t, got.Price)
	require.NotNil(t, got.Stock)
	assert.Equal(t, 500, *got.Price)
	assert.Equal(t, 3, *got.Stock)
}

// An add command with no attributes at all still resolves to its intent and
// names every absent field.
func TestParseAddProductBare(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "add new product")

	assert.Equal(t, core.IntentAddProduct, cmd.Intent)
	assert.Equal(t, core.StatusMissingEntity, cmd.Status)
	assert.ElementsMatch(t, []string{"name", "price", "stock"}, cmd.Missing)
}

func TestParseEditStockHindi(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "चावल का स्टॉक 100 करो")

	require.Equal(t, core.StatusSuccess, cmd.Status)
	assert.Equal(t, core.IntentEditStock, cmd.Intent)
	assert.Equal(t, core.LangHindi, cmd.Language.Primary)

	got := cmd.Entities.(core.EditStock)
	assert.Equal(t, "चावल", got.Name)
	require.NotNil(t, got.Stock)
	assert.Equal(t, 100, *got.Stock)
}

// The same date range must come out of the English and Hindi phrasing of one
// report request.
func TestParseCustomRangeCrossLanguage(t *testing.T) {
	e := newEngine(t)

	en := e.Parse(context.Background(), "show report from 1 June to 20 June")
	hi := e.Parse(context.Background(), "1 जून से 20 जून तक की रिपोर्ट दिखाओ")

	require.Equal(t, core.StatusSuccess, en.Status)
	require.Equal(t, core.StatusSuccess, hi.Status)
	require.Equal(t, core.IntentGetReport, en.Intent)
	require.Equal(t, core.IntentGetReport, hi.Intent)

	want := core.TimeWindow{
		Bucket:    core.BucketCustom,
		StartDate: "2026-06-01",
		EndDate:   "2026-06-20",
	}
	assert.Empty(t, cmp.Diff(want, en.Entities.(core.TimeWindow)))
	assert.Empty(t, cmp.Diff(want, hi.Entities.(core.TimeWindow)))
}

func TestParseLowStockDefaultThreshold(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "show me low stock items")

	require.Equal(t, core.StatusSuccess, cmd.Status)
	assert.Equal(t, core.IntentGetLowStock, cmd.Intent)
	assert.Equal(t, core.LowStock{Threshold: 5}, cmd.Entities)
}

func TestParseNegationShortCircuit(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "मुझे साबुन नहीं चाहिए")

	assert.True(t, cmd.HasNegation)
	assert.Equal(t, core.IntentUnknown, cmd.Intent)
	assert.Nil(t, cmd.Entities)
	assert.Equal(t, core.StatusUnknown, cmd.Status)
	assert.Zero(t, cmd.Confidence)
}

// Roman-script Hindi normalizes to the same command as native Devanagari.
func TestParseTransliteratedEquivalence(t *testing.T) {
	e := newEngine(t)

	roman := e.Parse(context.Background(), "chawal ka stock 100 karo")
	native := e.Parse(context.Background(), "चावल का स्टॉक 100 करो")

	assert.Equal(t, native.NormalizedText, roman.NormalizedText)
	assert.Equal(t, native.Intent, roman.Intent)
	assert.Empty(t, cmp.Diff(native.Entities, roman.Entities))
}

// A mixed message with a recognized intent but no stock number reports what
// is missing instead of failing.
func TestParseMissingEntity(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "rice ka stock update karo")

	assert.Equal(t, core.IntentEditStock, cmd.Intent)
	assert.Equal(t, core.StatusMissingEntity, cmd.Status)
	assert.Equal(t, []string{"stock"}, cmd.Missing)
	assert.Equal(t, "rice", cmd.Entities.(core.EditStock).Name)
}

func TestParseUnknown(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "what a lovely morning")

	assert.Equal(t, core.IntentUnknown, cmd.Intent)
	assert.Equal(t, core.StatusUnknown, cmd.Status)
	assert.Zero(t, cmd.Confidence)
	assert.Nil(t, cmd.Entities)
}

func TestParseEmptyInput(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "   ")

	assert.Equal(t, core.StatusUnknown, cmd.Status)
	assert.Equal(t, core.LangEnglish, cmd.Language.Primary)
	assert.Equal(t, 0.5, cmd.Language.Confidence)
	assert.Empty(t, cmd.NormalizedText)
}

func TestParseMixedLanguageDecision(t *testing.T) {
	e := newEngine(t)

	cmd := e.Parse(context.Background(), "मुझे inventory दिखाओ")

	assert.True(t, cmd.Language.Mixed)
	assert.NotEmpty(t, cmd.Language.Segments)
	assert.Equal(t, core.IntentGetInventory, cmd.Intent)
}

func TestParseMessageEnvelope(t *testing.T) {
	e := newEngine(t)

	msg := core.NewRawMessage("seller-42", "show my orders")
	cmd := e.ParseMessage(context.Background(), msg)

	require.Equal(t, core.StatusSuccess, cmd.Status)
	assert.Equal(t, core.IntentGetOrders, cmd.Intent)
	assert.Equal(t, core.BucketAll, cmd.Entities.(core.TimeWindow).Bucket)
}

func TestDetectLanguage(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, core.LangEnglish, e.DetectLanguage("show my products").Primary)
	assert.Equal(t, core.LangHindi, e.DetectLanguage("मेरे प्रोडक्ट दिखाओ").Primary)
	assert.True(t, e.DetectLanguage("stock दिखाओ").Mixed)
}

// Success envelopes always carry a concrete intent; negated and unknown
// envelopes never carry entities.
func TestParseInvariants(t *testing.T) {
	e := newEngine(t)

	inputs := []string{
		"show my inventory",
		"मुझे साबुन नहीं चाहिए",
		"add new product",
		"hello",
		"चावल का स्टॉक 100 करो",
		"show top 3 products this week",
	}
	for _, in := range inputs {
		cmd := e.Parse(context.Background(), in)

		assert.NotEmpty(t, cmd.Language.Primary, "input: %s", in)
		if cmd.Status == core.StatusSuccess {
			assert.NotEqual(t, core.IntentUnknown, cmd.Intent, "input: %s", in)
			assert.Empty(t, cmd.Missing, "input: %s", in)
		}
		if cmd.HasNegation {
			assert.Equal(t, core.IntentUnknown, cmd.Intent, "input: %s", in)
			assert.Nil(t, cmd.Entities, "input: %s", in)
		}
	}
}
