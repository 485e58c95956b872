// Package core holds the shared domain types of the command interpretation
// engine: languages, intents, entity variants, and the parsed command
// envelope. Everything here is plain data; behavior lives in the pipeline
// packages.
package core

// Intent is the canonical action a chat message maps to.
type Intent string

const (
	IntentGetInventory    Intent = "get_inventory"
	IntentGetLowStock     Intent = "get_low_stock"
	IntentGetReport       Intent = "get_report"
	IntentGetTopProducts  Intent = "get_top_products"
	IntentGetCustomerData Intent = "get_customer_data"
	IntentAddProduct      Intent = "add_product"
	IntentEditStock       Intent = "edit_stock"
	IntentGetOrders       Intent = "get_orders"
	IntentSearchProduct   Intent = "search_product"
	IntentUnknown         Intent = "unknown"
)

// Intents lists every concrete (non-unknown) intent, so callers can
// exhaustively enumerate the command surface.
var Intents = []Intent{
	IntentGetInventory,
	IntentGetLowStock,
	IntentGetReport,
	IntentGetTopProducts,
	IntentGetCustomerData,
	IntentAddProduct,
	IntentEditStock,
	IntentGetOrders,
	IntentSearchProduct,
}

// Valid reports whether i is one of the closed set of intents.
func (i Intent) Valid() bool {
	if i == IntentUnknown {
		return true
	}
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

func (i Intent) String() string { return string(i) }
