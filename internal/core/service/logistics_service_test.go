package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

func logisticsFixture(seed int64) (*LogisticsGenerator, []domain.Product, []string) {
	catalog := GenerateCatalog(random.NewStream(42), domain.DefaultCategories(), 20, testStart)
	warehouses := []string{"WH-01", "WH-02", "WH-03", "WH-04", "WH-05"}
	end := testStart.AddDate(2, 11, 30)
	return NewLogisticsGenerator(random.NewStream(seed), catalog.Products, warehouses, testStart, end),
		catalog.Products, warehouses
}

func TestInventory_FullCrossProduct(t *testing.T) {
	gen, products, warehouses := logisticsFixture(1)

	records := gen.Inventory()
	require.Len(t, records, len(products)*len(warehouses))

	pairs := make(map[string]bool)
	for _, r := range records {
		key := r.ProductID + "|" + r.Warehouse
		require.False(t, pairs[key], "duplicate pair %s", key)
		pairs[key] = true
	}
}

func TestInventory_FieldRanges(t *testing.T) {
	gen, _, _ := logisticsFixture(1)

	for _, r := range gen.Inventory() {
		require.GreaterOrEqual(t, r.StockLevel, 50)
		require.LessOrEqual(t, r.StockLevel, 1000)
		require.Contains(t, domain.RestockCadences, r.RestockFrequency)
		require.Contains(t, domain.BinLocations, r.StockLocation)
		require.GreaterOrEqual(t, r.OrderQuantity, 50)
		require.LessOrEqual(t, r.OrderQuantity, 200)
		require.False(t, r.RestockDate.After(testStart))
	}
}

func TestShipments_CountAndIDs(t *testing.T) {
	gen, _, _ := logisticsFixture(1)

	shipments := gen.Shipments(250)
	require.Len(t, shipments, 250)
	for i, s := range shipments {
		assert.Equal(t, fmt.Sprintf("SHIP-%05d", i+1), s.ID)
	}
}

func TestShipments_ArrivalAfterDeparture(t *testing.T) {
	gen, _, _ := logisticsFixture(1)

	for _, s := range gen.Shipments(250) {
		require.True(t, s.Arrival.After(s.Departure), s.ID)
		days := s.Arrival.Sub(s.Departure).Hours() / 24
		require.GreaterOrEqual(t, days, 1.0)
		require.LessOrEqual(t, days, 14.0)
	}
}

func TestShipments_TrackingNumbers(t *testing.T) {
	gen, _, _ := logisticsFixture(1)

	for _, s := range gen.Shipments(100) {
		require.Len(t, s.TrackingNumber, 8)
		for _, c := range s.TrackingNumber {
			require.Contains(t, trackingAlphabet, string(c))
		}
	}
}

func TestShipments_ReferencesAndEnums(t *testing.T) {
	gen, products, _ := logisticsFixture(1)

	known := make(map[string]bool)
	for _, p := range products {
		known[p.ID] = true
	}
	for _, s := range gen.Shipments(100) {
		require.True(t, known[s.ProductID], "unknown product %s", s.ProductID)
		require.Contains(t, domain.TransportModes, s.TransportMode)
		require.Contains(t, domain.ShipmentStatuses, s.Status)
	}
}

func TestLogistics_Deterministic(t *testing.T) {
	a, _, _ := logisticsFixture(3)
	b, _, _ := logisticsFixture(3)

	require.Equal(t, a.Inventory(), b.Inventory())
	require.Equal(t, a.Shipments(100), b.Shipments(100))
}
