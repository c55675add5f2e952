package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

var testStart = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateCatalog_SKUCountsPerBrand(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)

	perBrand := make(map[string]int)
	for _, p := range catalog.Products {
		perBrand[p.Category+"/"+p.Brand]++
	}
	// 10 categories x 4 brands, 5-8 SKUs each.
	require.Len(t, perBrand, 40)
	for key, n := range perBrand {
		assert.GreaterOrEqual(t, n, 5, key)
		assert.LessOrEqual(t, n, 8, key)
	}
}

func TestGenerateCatalog_UniqueIdentifiers(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)

	ids := make(map[string]bool)
	skus := make(map[string]bool)
	for _, p := range catalog.Products {
		require.False(t, ids[p.ID], "duplicate product id %s", p.ID)
		require.False(t, skus[p.SKU], "duplicate sku %s", p.SKU)
		ids[p.ID] = true
		skus[p.SKU] = true
	}
}

func TestGenerateCatalog_PriceAboveCost(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)

	for _, p := range catalog.Products {
		require.Greater(t, p.Price, p.Cost, p.ID)
		require.GreaterOrEqual(t, p.Cost, 5.0)
		require.LessOrEqual(t, p.Cost, 200.0)
	}
}

func TestGenerateCatalog_SupplierReferencesResolve(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)

	known := make(map[string]bool)
	for _, s := range catalog.Suppliers {
		known[s.ID] = true
	}
	require.Len(t, known, 20)
	for _, p := range catalog.Products {
		require.True(t, known[p.SupplierID], "product %s references unknown supplier %s", p.ID, p.SupplierID)
	}
}

func TestGenerateCatalog_SupplierFields(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)

	for _, s := range catalog.Suppliers {
		assert.GreaterOrEqual(t, s.Rating, 3.0)
		assert.LessOrEqual(t, s.Rating, 5.0)
		assert.Contains(t, domain.LeadTimes, s.LeadTimeDays)
		assert.True(t, s.ContractStart.Before(testStart))
		assert.Contains(t, s.Contact, "@")
	}
}

func TestGenerateCatalog_IdentifierScheme(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)

	first := catalog.Products[0]
	assert.Equal(t, "Electronics", first.Category)
	assert.Equal(t, "Ele-Son-1001", first.ID)
	assert.Equal(t, "SKU-1001", first.SKU)
}

func TestGenerateCatalog_Deterministic(t *testing.T) {
	a := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)
	b := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)
	require.Equal(t, a.Products, b.Products)
	require.Equal(t, a.Suppliers, b.Suppliers)
}

func TestCatalog_CategoryLookup(t *testing.T) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)

	cat, ok := catalog.Category("Ice Cream")
	require.True(t, ok)
	assert.Equal(t, 4.0, cat.Multiplier)

	_, ok = catalog.Category("Nonexistent")
	assert.False(t, ok)
}
