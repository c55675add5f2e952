package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

// Catalog holds the frozen product and supplier tables. Nothing mutates it
// after generation; every downstream generator reads from it.
type Catalog struct {
	Products   []domain.Product
	Suppliers  []domain.Supplier
	categories map[string]domain.Category
}

// Category resolves a category definition by name.
func (c *Catalog) Category(name string) (domain.Category, bool) {
	cat, ok := c.categories[name]
	return cat, ok
}

var (
	companyPrefixes = []string{"Apex", "Global", "Prime", "Summit", "Pioneer", "Atlas", "Vertex", "Crescent", "Harbor", "Meridian"}
	companySuffixes = []string{"Supply Co", "Trading", "Distribution", "Logistics", "Industries", "Wholesale", "Partners", "Holdings"}
)

// GenerateCatalog builds products and suppliers from the category table.
// SKU counts per (category, brand) are drawn in [5,8]; the SKU counter
// starts at 1000 and pre-increments, so identifiers are unique by
// construction. All date windows are anchored to startDate so output
// depends only on seed and configuration.
func GenerateCatalog(rng *random.Stream, categories []domain.Category, numSuppliers int, startDate time.Time) *Catalog {
	supplierIDs := make([]string, numSuppliers)
	for i := range supplierIDs {
		supplierIDs[i] = fmt.Sprintf("SUP-%03d", i+1)
	}

	manufactureLo := startDate.AddDate(-5, 0, 0)
	manufactureHi := startDate.AddDate(0, -6, 0)

	var products []domain.Product
	skuSeq := 1000
	for _, cat := range categories {
		for _, brand := range cat.Brands {
			count := rng.IntBetween(5, 8)
			for i := 0; i < count; i++ {
				skuSeq++
				cost := round2(rng.Uniform(5, 200))
				price := round2(cost * rng.Uniform(1.3, 3.0))
				products = append(products, domain.Product{
					ID:         fmt.Sprintf("%s-%s-%d", abbrev(cat.Name), abbrev(brand), skuSeq),
					Category:   cat.Name,
					Brand:      brand,
					SKU:        fmt.Sprintf("SKU-%d", skuSeq),
					Price:      price,
					Cost:       cost,
					SupplierID: random.Choice(rng, supplierIDs),
					Dimensions: fmt.Sprintf("%dx%dx%d cm",
						rng.IntBetween(5, 50), rng.IntBetween(5, 50), rng.IntBetween(5, 50)),
					ManufactureDate: rng.DateBetween(manufactureLo, manufactureHi),
					WarrantyYears:   random.Choice(rng, domain.WarrantyYears),
					LifecycleStage:  random.Choice(rng, domain.LifecycleStages),
				})
			}
		}
	}

	contractLo := startDate.AddDate(-5, 0, 0)
	contractHi := startDate.AddDate(-1, 0, 0)

	suppliers := make([]domain.Supplier, 0, numSuppliers)
	for _, id := range supplierIDs {
		name := random.Choice(rng, companyPrefixes) + " " + random.Choice(rng, companySuffixes)
		suppliers = append(suppliers, domain.Supplier{
			ID:            id,
			Name:          name,
			Contact:       contactEmail(name),
			Rating:        round1(rng.Uniform(3.0, 5.0)),
			LeadTimeDays:  random.Choice(rng, domain.LeadTimes),
			ContractStart: rng.DateBetween(contractLo, contractHi),
		})
	}

	catIndex := make(map[string]domain.Category, len(categories))
	for _, cat := range categories {
		catIndex[cat.Name] = cat
	}

	return &Catalog{Products: products, Suppliers: suppliers, categories: catIndex}
}

// abbrev takes the first three characters, matching the legacy identifier
// scheme ("Ice Cream" -> "Ice").
func abbrev(s string) string {
	if len(s) < 3 {
		return s
	}
	return s[:3]
}

func contactEmail(company string) string {
	slug := strings.ToLower(company)
	slug = strings.ReplaceAll(slug, " ", "")
	return "sales@" + slug + ".example.com"
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
