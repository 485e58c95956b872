package core

// TimeBucket is a named reporting window.
type TimeBucket string

const (
	BucketToday     TimeBucket = "today"
	BucketYesterday TimeBucket = "yesterday"
	BucketThisWeek  TimeBucket = "this-week"
	BucketLastWeek  TimeBucket = "last-week"
	BucketThisMonth TimeBucket = "this-month"
	BucketLastMonth TimeBucket = "last-month"
	BucketThisYear  TimeBucket = "this-year"
	BucketLastYear  TimeBucket = "last-year"
	BucketLastNDays TimeBucket = "last-n-days"
	BucketRecent    TimeBucket = "recent"
	BucketAll       TimeBucket = "all"

	// BucketCustom marks an absolute start/end range instead of a named
	// window. StartDate and EndDate are set on the TimeWindow.
	BucketCustom TimeBucket = "custom"
)

// Buckets lists every named bucket callers may receive.
var Buckets = []TimeBucket{
	BucketToday, BucketYesterday,
	BucketThisWeek, BucketLastWeek,
	BucketThisMonth, BucketLastMonth,
	BucketThisYear, BucketLastYear,
	BucketLastNDays, BucketRecent, BucketAll, BucketCustom,
}

// EntitySet is the per-intent entity variant. Each concrete intent has its
// own type carrying only the fields relevant to it; there is no generic
// string-keyed bag.
type EntitySet interface {
	entitySet()
}

// AddProduct carries the attributes of a product to create. Price and Stock
// are pointers so a partial parse can report exactly which fields were found.
type AddProduct struct {
	Name  string `json:"name,omitempty"`
	Price *int   `json:"price,omitempty"`
	Stock *int   `json:"stock,omitempty"`
}

// EditStock carries a product name and its new absolute stock level. Stock
// may be negative: the engine preserves the permissive parse and leaves
// validation to the caller.
type EditStock struct {
	Name  string `json:"name,omitempty"`
	Stock *int   `json:"stock,omitempty"`
}

// LowStock carries the threshold below which items are reported.
type LowStock struct {
	Threshold int `json:"threshold"`
}

// Search carries the free-text product name being looked up.
type Search struct {
	Name string `json:"name,omitempty"`
}

// TimeWindow is shared by the report, orders, top-products and customer-data
// intents. Either Bucket names the window, or Bucket is BucketCustom and
// StartDate/EndDate hold an absolute YYYY-MM-DD range.
type TimeWindow struct {
	Bucket    TimeBucket `json:"bucket,omitempty"`
	StartDate string     `json:"start_date,omitempty"`
	EndDate   string     `json:"end_date,omitempty"`

	// Days is set when Bucket is BucketLastNDays.
	Days int `json:"days,omitempty"`

	// Limit is the optional top-N count for get_top_products and
	// get_customer_data. Zero means the intent has no limit notion.
	Limit int `json:"limit,omitempty"`
}

// Inventory is the (empty) variant for get_inventory: the intent needs no
// entities, but the envelope still carries a typed marker.
type Inventory struct{}

func (AddProduct) entitySet() {}
func (EditStock) entitySet()  {}
func (LowStock) entitySet()   {}
func (Search) entitySet()     {}
func (TimeWindow) entitySet() {}
func (Inventory) entitySet()  {}
