package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

func campaign(productID string, start time.Time, days int, channel string) domain.Promotion {
	return domain.Promotion{
		ProductID:    productID,
		Type:         domain.PromotionBundle,
		DurationDays: days,
		Start:        start,
		End:          start.AddDate(0, 0, days),
		Channel:      channel,
	}
}

func TestActivePromotion_EndIsExclusive(t *testing.T) {
	s := &PromotionScheduler{byProduct: make(map[string][]int)}
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	s.register(campaign("P-1", start, 14, "Online"))

	// A 14-day campaign starting Jan 1 covers Jan 1 through Jan 14.
	for d := start; d.Before(start.AddDate(0, 0, 14)); d = d.AddDate(0, 0, 1) {
		require.NotNil(t, s.ActivePromotion("P-1", d), "expected active campaign on %s", d)
	}
	assert.Nil(t, s.ActivePromotion("P-1", start.AddDate(0, 0, 14)),
		"campaign must be over on its end date")
	assert.Nil(t, s.ActivePromotion("P-1", start.AddDate(0, 0, -1)))
}

func TestActivePromotion_FirstRegisteredWinsOnOverlap(t *testing.T) {
	s := &PromotionScheduler{byProduct: make(map[string][]int)}
	base := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	// Second campaign starts earlier and fully covers the first; the first
	// registered one must still win inside the overlap.
	s.register(campaign("P-1", base, 10, "Email"))
	s.register(campaign("P-1", base.AddDate(0, 0, -5), 30, "Online"))

	inOverlap := base.AddDate(0, 0, 3)
	got := s.ActivePromotion("P-1", inOverlap)
	require.NotNil(t, got)
	assert.Equal(t, "Email", got.Channel)

	// Outside the first window only the second matches.
	beforeFirst := base.AddDate(0, 0, -2)
	got = s.ActivePromotion("P-1", beforeFirst)
	require.NotNil(t, got)
	assert.Equal(t, "Online", got.Channel)
}

func TestActivePromotion_UnknownProduct(t *testing.T) {
	s := &PromotionScheduler{byProduct: make(map[string][]int)}
	assert.Nil(t, s.ActivePromotion("missing", time.Now()))
}

func TestNewPromotionScheduler_CampaignShape(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)
	windowEnd := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	s := NewPromotionScheduler(random.NewStream(42), catalog.Products, 100, testStart, windowEnd)
	campaigns := s.Campaigns()
	require.NotEmpty(t, campaigns)

	perProduct := make(map[string]int)
	for _, c := range campaigns {
		perProduct[c.ProductID]++

		assert.False(t, c.Start.Before(testStart), "campaign starts before eligible window")
		assert.False(t, c.Start.After(windowEnd))
		assert.Equal(t, c.Start.AddDate(0, 0, c.DurationDays), c.End)

		if c.Type == domain.PromotionFlashSale {
			assert.Contains(t, flashSaleDurations, c.DurationDays)
		} else {
			assert.GreaterOrEqual(t, c.DurationDays, 7)
			assert.LessOrEqual(t, c.DurationDays, 60)
		}

		if c.Type == domain.PromotionDiscount {
			require.NotNil(t, c.DiscountPercentage)
			assert.GreaterOrEqual(t, *c.DiscountPercentage, 10.0)
			assert.LessOrEqual(t, *c.DiscountPercentage, 70.0)
		} else {
			assert.Nil(t, c.DiscountPercentage)
		}
	}

	require.Len(t, perProduct, 100)
	for id, n := range perProduct {
		assert.GreaterOrEqual(t, n, 1, id)
		assert.LessOrEqual(t, n, 3, id)
	}
}

func TestNewPromotionScheduler_ClampsToCatalogSize(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)
	small := catalog.Products[:10]

	s := NewPromotionScheduler(random.NewStream(42), small, 100, testStart, testStart.AddDate(1, 0, 0))
	perProduct := make(map[string]bool)
	for _, c := range s.Campaigns() {
		perProduct[c.ProductID] = true
	}
	assert.Len(t, perProduct, 10)
}

func TestNewPromotionScheduler_Deterministic(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)
	end := testStart.AddDate(2, 0, 0)

	a := NewPromotionScheduler(random.NewStream(7), catalog.Products, 100, testStart, end)
	b := NewPromotionScheduler(random.NewStream(7), catalog.Products, 100, testStart, end)
	require.Equal(t, a.Campaigns(), b.Campaigns())
}
