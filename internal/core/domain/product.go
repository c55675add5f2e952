package domain

import "time"

type LifecycleStage string

const (
	LifecycleNew      LifecycleStage = "New"
	LifecycleGrowth   LifecycleStage = "Growth"
	LifecycleMaturity LifecycleStage = "Maturity"
	LifecycleDecline  LifecycleStage = "Decline"
)

// LifecycleStages lists all stages in draw order.
var LifecycleStages = []LifecycleStage{LifecycleNew, LifecycleGrowth, LifecycleMaturity, LifecycleDecline}

// Product is immutable once generated; Price is always strictly above Cost.
type Product struct {
	ID              string
	Category        string
	Brand           string
	SKU             string
	Price           float64
	Cost            float64
	SupplierID      string
	Dimensions      string
	ManufactureDate time.Time
	WarrantyYears   int
	LifecycleStage  LifecycleStage
}

// Supplier is immutable once generated.
type Supplier struct {
	ID            string
	Name          string
	Contact       string
	Rating        float64
	LeadTimeDays  int
	ContractStart time.Time
}
