package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

func marketFixture(seed int64) (*MarketSignalGenerator, []domain.Product) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)
	return NewMarketSignalGenerator(random.NewStream(seed), catalog.Products), catalog.Products
}

func TestWeekEndings(t *testing.T) {
	// 2021-01-01 is a Friday; the first Sunday is Jan 3.
	weeks := weekEndings(testStart, time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC))
	require.Len(t, weeks, 5)
	assert.Equal(t, time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC), weeks[0])
	for _, w := range weeks {
		assert.Equal(t, time.Sunday, w.Weekday())
	}

	// A horizon containing no Sunday yields no weeks.
	assert.Empty(t, weekEndings(testStart, testStart))
}

func TestGenerate_OneSignalPerWeek(t *testing.T) {
	gen, _ := marketFixture(1)
	end := time.Date(2021, 3, 31, 0, 0, 0, 0, time.UTC)

	signals := gen.Generate(testStart, end)
	require.Len(t, signals, len(weekEndings(testStart, end)))
	for _, s := range signals {
		assert.Equal(t, time.Sunday, s.WeekEnding.Weekday())
	}
}

func TestGenerate_TemperatureBanding(t *testing.T) {
	gen, _ := marketFixture(1)

	signals := gen.Generate(testStart, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NotEmpty(t, signals)
	for _, s := range signals {
		switch s.WeekEnding.Month() {
		case time.June, time.July, time.August:
			assert.Equal(t, 30.0, s.Temperature)
		case time.December, time.January, time.February:
			assert.Equal(t, -5.0, s.Temperature)
		default:
			assert.GreaterOrEqual(t, s.Temperature, 10.0)
			assert.LessOrEqual(t, s.Temperature, 25.0)
		}
	}
}

func TestGenerate_WeatherDerivedFromTemperature(t *testing.T) {
	gen, _ := marketFixture(1)

	signals := gen.Generate(testStart, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC))
	for _, s := range signals {
		switch {
		case s.Temperature > 30:
			assert.Equal(t, domain.WeatherHeatwave, s.WeatherCondition)
		case s.Temperature < 0:
			assert.Equal(t, domain.WeatherSnowy, s.WeatherCondition)
		default:
			assert.Contains(t, domain.WeatherConditions, s.WeatherCondition)
		}
	}
}

func TestGenerate_FieldRangesAndReferences(t *testing.T) {
	gen, products := marketFixture(1)
	known := make(map[string]bool)
	for _, p := range products {
		known[p.ID] = true
	}

	for _, s := range gen.Generate(testStart, time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC)) {
		require.True(t, known[s.ProductID], "unknown product %s", s.ProductID)
		assert.GreaterOrEqual(t, s.SocialMediaMentions, 50)
		assert.LessOrEqual(t, s.SocialMediaMentions, 500)
		assert.GreaterOrEqual(t, s.CompetitorAnalysisScore, 60.0)
		assert.LessOrEqual(t, s.CompetitorAnalysisScore, 90.0)
		assert.GreaterOrEqual(t, s.CPIChange, -0.02)
		assert.LessOrEqual(t, s.CPIChange, 0.05)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := marketFixture(5)
	b, _ := marketFixture(5)
	end := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)

	require.Equal(t, a.Generate(testStart, end), b.Generate(testStart, end))
}
