package service

import (
	"time"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

// flashSaleDurations is the discrete duration set for flash-sale campaigns;
// every other type draws a uniform duration in [7,60].
var flashSaleDurations = []int{3, 7, 14, 30}

// PromotionScheduler owns the immutable campaign schedule and answers
// point-in-time activity queries through a per-product index, so a lookup
// never scans campaigns belonging to other products.
type PromotionScheduler struct {
	campaigns []domain.Promotion
	byProduct map[string][]int
}

// NewPromotionScheduler selects promoProducts products without replacement
// and schedules 1-3 campaigns for each. Campaign starts are drawn from
// [windowStart, windowEnd], so no campaign starts before the eligible
// window.
func NewPromotionScheduler(rng *random.Stream, products []domain.Product, promoProducts int, windowStart, windowEnd time.Time) *PromotionScheduler {
	s := &PromotionScheduler{byProduct: make(map[string][]int)}

	for _, product := range random.Sample(rng, products, promoProducts) {
		campaigns := rng.IntBetween(1, 3)
		for i := 0; i < campaigns; i++ {
			promoType := random.Choice(rng, domain.PromotionTypes)
			start := rng.DateBetween(windowStart, windowEnd)

			var duration int
			if promoType == domain.PromotionFlashSale {
				duration = random.Choice(rng, flashSaleDurations)
			} else {
				duration = rng.IntBetween(7, 60)
			}

			var discount *float64
			if promoType == domain.PromotionDiscount {
				pct := float64(rng.IntBetween(10, 70))
				discount = &pct
			}

			s.register(domain.Promotion{
				ProductID:          product.ID,
				Type:               promoType,
				DiscountPercentage: discount,
				DurationDays:       duration,
				Budget:             round2(rng.Uniform(1000, 10000)),
				Start:              start,
				End:                start.AddDate(0, 0, duration),
				TargetAudience:     random.Choice(rng, domain.PromotionAudiences),
				Channel:            random.Choice(rng, domain.PromotionChannels),
				CompetitorResponse: random.Choice(rng, domain.CompetitorMoves),
			})
		}
	}
	return s
}

func (s *PromotionScheduler) register(p domain.Promotion) {
	s.campaigns = append(s.campaigns, p)
	s.byProduct[p.ProductID] = append(s.byProduct[p.ProductID], len(s.campaigns)-1)
}

// ActivePromotion returns the campaign covering date for the product, or nil.
// When several of the product's campaigns overlap the date, the one
// registered first wins; the index preserves scheduling order so the
// tie-break does not depend on map iteration.
func (s *PromotionScheduler) ActivePromotion(productID string, date time.Time) *domain.Promotion {
	for _, idx := range s.byProduct[productID] {
		if s.campaigns[idx].Active(date) {
			return &s.campaigns[idx]
		}
	}
	return nil
}

// Campaigns returns the full schedule in registration order.
func (s *PromotionScheduler) Campaigns() []domain.Promotion {
	return s.campaigns
}
