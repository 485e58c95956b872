package entity

import (
	"time"

	"vaani/internal/config"
	"vaani/internal/core"
)

// Extractor dispatches normalized text to the per-intent extraction routines.
// It is immutable after construction and safe for concurrent use.
type Extractor struct {
	cfg config.EntitiesConfig
	now func() time.Time
}

// NewExtractor builds an extractor. now may be nil, in which case wall-clock
// time is used; tests inject a fixed clock.
func NewExtractor(cfg config.EntitiesConfig, now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{cfg: cfg, now: now}
}

// Extract returns the entity variant for intent plus the names of any
// required fields that could not be recovered from the text. A nil set with
// no missing fields means the intent carries no entities.
func (e *Extractor) Extract(intent core.Intent, text string) (core.EntitySet, []string) {
	now := e.now()

	switch intent {
	case core.IntentGetInventory:
		return core.Inventory{}, nil

	case core.IntentGetLowStock:
		return ExtractLowStock(text, e.cfg.LowStockThreshold), nil

	case core.IntentAddProduct:
		return ExtractAddProduct(text)

	case core.IntentEditStock:
		return ExtractEditStock(text)

	case core.IntentSearchProduct:
		return ExtractSearch(text)

	case core.IntentGetReport:
		return ExtractTimeWindow(text, now, core.BucketToday, 0), nil

	case core.IntentGetOrders:
		return ExtractTimeWindow(text, now, core.BucketAll, 0), nil

	case core.IntentGetTopProducts:
		return ExtractTimeWindow(text, now, core.BucketThisWeek, e.cfg.TopProductsLimit), nil

	case core.IntentGetCustomerData:
		return ExtractTimeWindow(text, now, core.BucketThisMonth, e.cfg.TopCustomersLimit), nil
	}
	return nil, nil
}
