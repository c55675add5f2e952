package domain

import "time"

type PromotionType string

const (
	PromotionDiscount  PromotionType = "Discount"
	PromotionBOGO      PromotionType = "BOGO"
	PromotionBundle    PromotionType = "Bundle"
	PromotionFlashSale PromotionType = "Flash Sale"
	PromotionSeasonal  PromotionType = "Seasonal Offer"
)

var PromotionTypes = []PromotionType{
	PromotionDiscount, PromotionBOGO, PromotionBundle, PromotionFlashSale, PromotionSeasonal,
}

var (
	PromotionChannels  = []string{"Online", "In-Store", "Social Media", "Email", "Mobile App"}
	PromotionAudiences = []string{"Families", "Teens", "Adults", "Seniors", "All"}
	CompetitorMoves    = []string{"None", "Price Match", "Bundled Offer", "Loyalty Program", "Discount War"}
)

// Promotion is a single campaign for one product. DiscountPercentage is set
// only for Discount campaigns. End is always Start + DurationDays.
type Promotion struct {
	ProductID          string
	Type               PromotionType
	DiscountPercentage *float64
	DurationDays       int
	Budget             float64
	Start              time.Time
	End                time.Time
	TargetAudience     string
	Channel            string
	CompetitorResponse string
}

// Active reports whether the campaign window [Start, End) contains the date.
// End is exclusive: a campaign starting Jan 1 with a 14-day duration runs
// through Jan 14 and is over on Jan 15.
func (p Promotion) Active(date time.Time) bool {
	return !date.Before(p.Start) && date.Before(p.End)
}
