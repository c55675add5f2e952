package domain

import "time"

// Holiday labels attached to sales records.
const (
	HolidayChristmas       = "Christmas"
	HolidayBlackFriday     = "Black Friday"
	HolidayIndependenceDay = "Independence Day"
)

// SalesRecord is one (day, product) transaction. Revenue is always
// Quantity x the product's list price. Holiday is empty outside holiday
// windows and is persisted as NULL by the SQL sinks.
type SalesRecord struct {
	Date       time.Time
	ProductID  string
	CustomerID string
	StoreID    string
	Quantity   int
	Revenue    float64
	PromoFlag  bool
	Holiday    string
}
