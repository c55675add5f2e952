package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rl1809/retail-datagen/internal/config"
	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

// Dataset is the full in-memory output of one generation run. It is retained
// until every table has been confirmed by the sink, so a failed table can be
// re-published without regenerating.
type Dataset struct {
	Products      []domain.Product
	Suppliers     []domain.Supplier
	Customers     []domain.Customer
	Stores        []string
	Warehouses    []string
	Promotions    []domain.Promotion
	Sales         []domain.SalesRecord
	Inventory     []domain.InventoryRecord
	Shipments     []domain.ShipmentRecord
	MarketSignals []domain.MarketSignal
}

// Pipeline runs the generation stages in dependency order. It owns the
// master stream; there is no other random state anywhere in the process.
type Pipeline struct {
	cfg config.Config
	log *slog.Logger
}

func NewPipeline(cfg config.Config, log *slog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Generate produces the complete dataset. Catalog, entity pools and the
// promotion schedule are frozen before the demand simulation starts.
// Logistics and market signals only read the frozen catalog, so they run
// concurrently, each on a sub-stream derived from the master seed.
// No I/O happens here; cancellation aborts before any sink write.
func (p *Pipeline) Generate(ctx context.Context) (*Dataset, error) {
	cfg := p.cfg
	master := random.NewStream(cfg.Seed)

	catalog := GenerateCatalog(master, cfg.Categories, cfg.NumSuppliers, cfg.StartDate)
	p.log.Info("catalog generated",
		slog.Int("products", len(catalog.Products)),
		slog.Int("suppliers", len(catalog.Suppliers)))

	pool := GenerateEntityPool(master, cfg.NumCustomers, cfg.NumStores, cfg.NumWarehouses, cfg.StartDate)
	p.log.Info("entity pools generated",
		slog.Int("customers", len(pool.Customers)),
		slog.Int("stores", len(pool.Stores)),
		slog.Int("warehouses", len(pool.Warehouses)))

	scheduler := NewPromotionScheduler(master, catalog.Products, cfg.NumPromoProducts, cfg.StartDate, cfg.EndDate)
	p.log.Info("promotions scheduled", slog.Int("campaigns", len(scheduler.Campaigns())))

	sales, err := NewDemandSimulator(master, catalog, pool, scheduler).Run(ctx, cfg.StartDate, cfg.EndDate)
	if err != nil {
		return nil, err
	}
	p.log.Info("demand simulated", slog.Int("sales", len(sales)))

	ds := &Dataset{
		Products:   catalog.Products,
		Suppliers:  catalog.Suppliers,
		Customers:  pool.Customers,
		Stores:     pool.Stores,
		Warehouses: pool.Warehouses,
		Promotions: scheduler.Campaigns(),
		Sales:      sales,
	}

	logistics := NewLogisticsGenerator(master.Derive("logistics"), catalog.Products, pool.Warehouses, cfg.StartDate, cfg.EndDate)
	market := NewMarketSignalGenerator(master.Derive("market"), catalog.Products)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		ds.Inventory = logistics.Inventory()
		ds.Shipments = logistics.Shipments(cfg.NumShipments)
	}()
	go func() {
		defer wg.Done()
		ds.MarketSignals = market.Generate(cfg.StartDate, cfg.EndDate)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.log.Info("logistics and market signals generated",
		slog.Int("inventory", len(ds.Inventory)),
		slog.Int("shipments", len(ds.Shipments)),
		slog.Int("market_signals", len(ds.MarketSignals)))

	return ds, nil
}
