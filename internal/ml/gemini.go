package ml

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"

	"vaani/internal/core"
)

const geminiPrompt = `You classify a shopkeeper's chat message into exactly one intent.
The message may be English, Hindi, or a mix of both.

Intents: get_inventory, get_low_stock, get_report, get_top_products,
get_customer_data, add_product, edit_stock, get_orders, search_product, unknown

Reply with a single line: <intent> <confidence>
where confidence is a number between 0 and 1. No other text.

Message: %s`

// Gemini classifies intent with Google's Gemini API. It satisfies Strategy.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini creates a Gemini-backed strategy.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{client: client, model: model, timeout: timeout}, nil
}

// Predict asks the model for an intent. Malformed replies are treated as
// errors so the rule cascade takes over.
func (g *Gemini) Predict(ctx context.Context, text string) (Prediction, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(fmt.Sprintf(geminiPrompt, text)),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0),
		},
	)
	if err != nil {
		return Prediction{}, fmt.Errorf("gemini generate failed: %w", err)
	}

	return parseReply(resp.Text())
}

func (g *Gemini) Name() string { return fmt.Sprintf("gemini:%s", g.model) }

// parseReply reads the strict "<intent> <confidence>" wire line.
func parseReply(reply string) (Prediction, error) {
	line := strings.TrimSpace(reply)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Prediction{}, fmt.Errorf("malformed model reply %q", reply)
	}

	intent := core.Intent(fields[0])
	if !intent.Valid() {
		return Prediction{}, fmt.Errorf("model returned unknown intent %q", fields[0])
	}
	conf, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || conf < 0 || conf > 1 {
		return Prediction{}, fmt.Errorf("model returned bad confidence %q", fields[1])
	}
	return Prediction{Intent: intent, Confidence: conf}, nil
}
