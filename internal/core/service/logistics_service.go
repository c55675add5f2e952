package service

import (
	"fmt"
	"time"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

const trackingAlphabet = "0123456789ABCDEF"

// LogisticsGenerator derives inventory and shipment records from the frozen
// catalog. It runs on its own stream, independent of the daily simulation.
type LogisticsGenerator struct {
	rng        *random.Stream
	products   []domain.Product
	warehouses []string
	start      time.Time
	end        time.Time
}

func NewLogisticsGenerator(rng *random.Stream, products []domain.Product, warehouses []string, start, end time.Time) *LogisticsGenerator {
	return &LogisticsGenerator{rng: rng, products: products, warehouses: warehouses, start: start, end: end}
}

// Inventory emits exactly one record per (product, warehouse) pair, product
// major, in catalog order.
func (g *LogisticsGenerator) Inventory() []domain.InventoryRecord {
	restockLo := g.start.AddDate(-3, 0, 0)

	records := make([]domain.InventoryRecord, 0, len(g.products)*len(g.warehouses))
	for _, product := range g.products {
		for _, warehouse := range g.warehouses {
			records = append(records, domain.InventoryRecord{
				ProductID:        product.ID,
				Warehouse:        warehouse,
				StockLevel:       g.rng.IntBetween(50, 1000),
				RestockFrequency: random.Choice(g.rng, domain.RestockCadences),
				StockLocation:    random.Choice(g.rng, domain.BinLocations),
				OrderQuantity:    g.rng.IntBetween(50, 200),
				RestockDate:      g.rng.DateBetween(restockLo, g.start),
			})
		}
	}
	return records
}

// Shipments emits count records, each for a uniformly chosen product.
// Arrival is departure plus 1-14 days, never earlier.
func (g *LogisticsGenerator) Shipments(count int) []domain.ShipmentRecord {
	departLo := g.start.AddDate(-2, 0, 0)

	records := make([]domain.ShipmentRecord, 0, count)
	for i := 1; i <= count; i++ {
		product := random.Choice(g.rng, g.products)
		mode := random.Choice(g.rng, domain.TransportModes)
		tracking := g.trackingNumber()
		departure := g.rng.TimeBetween(departLo, g.end)

		records = append(records, domain.ShipmentRecord{
			ID:             fmt.Sprintf("SHIP-%05d", i),
			ProductID:      product.ID,
			TransportMode:  mode,
			TrackingNumber: tracking,
			Departure:      departure,
			Arrival:        departure.AddDate(0, 0, g.rng.IntBetween(1, 14)),
			Status:         random.Choice(g.rng, domain.ShipmentStatuses),
		})
	}
	return records
}

// trackingNumber draws an 8-character uppercase code from the stream.
// Tracking codes come from the seeded stream, not a UUID source, so runs
// stay reproducible.
func (g *LogisticsGenerator) trackingNumber() string {
	code := make([]byte, 8)
	for i := range code {
		code[i] = trackingAlphabet[g.rng.IntBetween(0, len(trackingAlphabet)-1)]
	}
	return string(code)
}
