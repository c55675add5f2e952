package service

import (
	"time"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

// MarketSignalGenerator emits one weekly exogenous signal per week-ending
// Sunday in the horizon, reading only the frozen catalog.
type MarketSignalGenerator struct {
	rng      *random.Stream
	products []domain.Product
}

func NewMarketSignalGenerator(rng *random.Stream, products []domain.Product) *MarketSignalGenerator {
	return &MarketSignalGenerator{rng: rng, products: products}
}

// Generate produces signals for every week ending in [start, end].
func (g *MarketSignalGenerator) Generate(start, end time.Time) []domain.MarketSignal {
	var signals []domain.MarketSignal
	for _, week := range weekEndings(start, end) {
		product := random.Choice(g.rng, g.products)
		temp := g.temperature(week.Month())

		signals = append(signals, domain.MarketSignal{
			WeekEnding:              week,
			ProductID:               product.ID,
			Temperature:             temp,
			WeatherCondition:        g.weather(temp),
			SocialMediaMentions:     g.rng.IntBetween(50, 500),
			CompetitorAnalysisScore: round2(g.rng.Uniform(60, 90)),
			CPIChange:               round4(g.rng.Uniform(-0.02, 0.05)),
		})
	}
	return signals
}

// temperature applies the deterministic seasonal banding; only the mild
// band consumes a draw.
func (g *MarketSignalGenerator) temperature(m time.Month) float64 {
	switch m {
	case time.June, time.July, time.August:
		return 30
	case time.December, time.January, time.February:
		return -5
	}
	return float64(g.rng.IntBetween(10, 25))
}

// weather is fully determined by temperature outside the mild band.
func (g *MarketSignalGenerator) weather(temp float64) string {
	switch {
	case temp > 30:
		return domain.WeatherHeatwave
	case temp < 0:
		return domain.WeatherSnowy
	}
	return random.Choice(g.rng, domain.WeatherConditions)
}

// weekEndings lists every Sunday in [start, end].
func weekEndings(start, end time.Time) []time.Time {
	first := start
	for first.Weekday() != time.Sunday {
		first = first.AddDate(0, 0, 1)
	}
	var weeks []time.Time
	for d := first; !d.After(end); d = d.AddDate(0, 0, 7) {
		weeks = append(weeks, d)
	}
	return weeks
}
