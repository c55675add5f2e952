package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

// DemandSimulator emits daily sales transactions over the simulation
// horizon. The draw order per day is fixed: subset size, product subset,
// then per product base quantity, noise factor, customer, store. Reordering
// any of these changes the output stream.
type DemandSimulator struct {
	rng     *random.Stream
	catalog *Catalog
	pool    *EntityPool
	promos  *PromotionScheduler
}

// NewDemandSimulator wires the simulator to its frozen inputs. The catalog,
// pool and promotion schedule must be fully built before the first day runs.
func NewDemandSimulator(rng *random.Stream, catalog *Catalog, pool *EntityPool, promos *PromotionScheduler) *DemandSimulator {
	return &DemandSimulator{rng: rng, catalog: catalog, pool: pool, promos: promos}
}

// Run simulates every day in [start, end] in calendar order and returns the
// ordered sales stream. A product whose category is missing from the
// category table is an invariant violation and aborts the run.
func (s *DemandSimulator) Run(ctx context.Context, start, end time.Time) ([]domain.SalesRecord, error) {
	var sales []domain.SalesRecord

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		holiday := holidayFor(day)

		subsetSize := s.rng.IntBetween(50, 100)
		daily := random.Sample(s.rng, s.catalog.Products, subsetSize)

		for _, product := range daily {
			cat, ok := s.catalog.Category(product.Category)
			if !ok {
				return nil, fmt.Errorf("product %s references unknown category %q", product.ID, product.Category)
			}

			base := s.rng.IntBetween(1, 50)
			qty := adjustQuantity(base, cat, day.Month(), holiday)

			qty = int(float64(qty) * s.rng.Uniform(0.7, 1.3))
			if qty < 1 {
				qty = 1
			}

			promo := s.promos.ActivePromotion(product.ID, day)
			customer := random.Choice(s.rng, s.pool.Customers)
			store := random.Choice(s.rng, s.pool.Stores)

			sales = append(sales, domain.SalesRecord{
				Date:       day,
				ProductID:  product.ID,
				CustomerID: customer.ID,
				StoreID:    store,
				Quantity:   qty,
				Revenue:    float64(qty) * product.Price,
				PromoFlag:  promo != nil,
				Holiday:    holiday,
			})
		}
	}
	return sales, nil
}

// adjustQuantity applies the pre-noise demand effects: the category
// multiplier when the day's month is in season, then the 2x holiday boost.
// Each step truncates to integer.
func adjustQuantity(base int, cat domain.Category, month time.Month, holiday string) int {
	qty := base
	if cat.InSeason(month) {
		qty = int(float64(qty) * cat.Multiplier)
	}
	if holiday != "" {
		qty = int(float64(qty) * 2.0)
	}
	return qty
}

// holidayFor labels the calendar holidays recognized by the simulation;
// empty means a regular day.
func holidayFor(day time.Time) string {
	month, d := day.Month(), day.Day()
	switch {
	case month == time.December && d == 25:
		return domain.HolidayChristmas
	case month == time.November && d >= 20 && d <= 30:
		return domain.HolidayBlackFriday
	case month == time.August && d == 15:
		return domain.HolidayIndependenceDay
	}
	return ""
}
