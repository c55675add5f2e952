package domain

import "time"

// Category defines one product category: its brand list, the months in which
// demand is seasonal (nil when demand is flat), and the multiplier applied to
// base demand in those months.
type Category struct {
	Name        string
	Brands      []string
	Seasonality []time.Month
	Multiplier  float64
}

// InSeason reports whether the month belongs to the category's seasonal
// window. Categories without a seasonality list are never in season.
func (c Category) InSeason(m time.Month) bool {
	for _, sm := range c.Seasonality {
		if sm == m {
			return true
		}
	}
	return false
}

// DefaultCategories is the standard ten-category retail taxonomy.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Electronics", Brands: []string{"Sony", "Samsung", "Apple", "Bose"},
			Seasonality: []time.Month{time.November, time.December}, Multiplier: 2.5},
		{Name: "Apparel", Brands: []string{"Nike", "Zara", "Levi's", "Patagonia"},
			Seasonality: []time.Month{time.December, time.January, time.February}, Multiplier: 3.0},
		{Name: "Ice Cream", Brands: []string{"Ben & Jerry's", "Haagen-Dazs", "Magnum", "Talenti"},
			Seasonality: []time.Month{time.June, time.July, time.August}, Multiplier: 4.0},
		{Name: "Outdoor", Brands: []string{"The North Face", "Columbia", "Patagonia", "Arc'teryx"},
			Seasonality: []time.Month{time.May, time.June, time.July, time.August}, Multiplier: 2.8},
		{Name: "Grocery", Brands: []string{"Kellogg's", "Heinz", "Nestle", "General Mills"},
			Seasonality: nil, Multiplier: 1.0},
		{Name: "Home", Brands: []string{"IKEA", "Williams-Sonoma", "Crate & Barrel", "Bed Bath & Beyond"},
			Seasonality: []time.Month{time.November, time.December}, Multiplier: 2.0},
		{Name: "Toys", Brands: []string{"LEGO", "Hasbro", "Mattel", "Fisher-Price"},
			Seasonality: []time.Month{time.November, time.December}, Multiplier: 3.5},
		{Name: "Beauty", Brands: []string{"L'Oreal", "Estee Lauder", "Clinique", "MAC"},
			Seasonality: []time.Month{time.November, time.December}, Multiplier: 2.0},
		{Name: "Sports", Brands: []string{"Nike", "Adidas", "Under Armour", "Puma"},
			Seasonality: []time.Month{time.January, time.May, time.June}, Multiplier: 1.8},
		{Name: "Books", Brands: []string{"Penguin", "HarperCollins", "Simon & Schuster", "Macmillan"},
			Seasonality: []time.Month{time.November, time.December}, Multiplier: 1.5},
	}
}
