package domain

import "time"

var WeatherConditions = []string{"Sunny", "Rainy", "Cloudy"}

const (
	WeatherHeatwave = "Heatwave"
	WeatherSnowy    = "Snowy"
)

// MarketSignal is one weekly exogenous observation tied to a single product.
// WeatherCondition is a pure function of Temperature except in the mild band,
// where it is drawn.
type MarketSignal struct {
	WeekEnding              time.Time
	ProductID               string
	Temperature             float64
	WeatherCondition        string
	SocialMediaMentions     int
	CompetitorAnalysisScore float64
	CPIChange               float64
}
