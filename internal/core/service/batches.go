package service

import (
	"fmt"

	"github.com/rl1809/retail-datagen/internal/port"
)

// Batch converts one table of the dataset into a positional row batch.
// Column order matches the persisted schema contract.
func (ds *Dataset) Batch(table string) (port.Batch, error) {
	switch table {
	case "products":
		b := port.Batch{Table: table, Columns: []string{
			"product_id", "category", "brand", "sku", "price", "cost", "supplier_id",
			"dimensions", "manufacture_date", "warranty_years", "lifecycle_stage",
		}}
		for _, p := range ds.Products {
			b.Rows = append(b.Rows, []any{
				p.ID, p.Category, p.Brand, p.SKU, p.Price, p.Cost, p.SupplierID,
				p.Dimensions, p.ManufactureDate, p.WarrantyYears, string(p.LifecycleStage),
			})
		}
		return b, nil

	case "suppliers":
		b := port.Batch{Table: table, Columns: []string{
			"supplier_id", "name", "contact", "rating", "lead_time_days", "contract_start",
		}}
		for _, s := range ds.Suppliers {
			b.Rows = append(b.Rows, []any{
				s.ID, s.Name, s.Contact, s.Rating, s.LeadTimeDays, s.ContractStart,
			})
		}
		return b, nil

	case "customers":
		b := port.Batch{Table: table, Columns: []string{
			"customer_id", "age", "gender", "location",
			"first_purchase", "last_purchase", "lifetime_value",
		}}
		for _, c := range ds.Customers {
			b.Rows = append(b.Rows, []any{
				c.ID, c.Age, string(c.Gender), c.Location,
				c.FirstPurchase, c.LastPurchase, c.LifetimeValue,
			})
		}
		return b, nil

	case "inventory":
		b := port.Batch{Table: table, Columns: []string{
			"product_id", "warehouse", "stock_level", "restock_frequency_days",
			"stock_location", "order_quantity", "restock_date",
		}}
		for _, r := range ds.Inventory {
			b.Rows = append(b.Rows, []any{
				r.ProductID, r.Warehouse, r.StockLevel, r.RestockFrequency,
				r.StockLocation, r.OrderQuantity, r.RestockDate,
			})
		}
		return b, nil

	case "promotions":
		b := port.Batch{Table: table, Columns: []string{
			"product_id", "promotion_type", "discount_percentage", "campaign_duration_days",
			"campaign_budget", "campaign_start", "campaign_end",
			"target_audience", "channel", "competitor_response",
		}}
		for _, p := range ds.Promotions {
			b.Rows = append(b.Rows, []any{
				p.ProductID, string(p.Type), nullableFloat(p.DiscountPercentage), p.DurationDays,
				p.Budget, p.Start, p.End,
				p.TargetAudience, p.Channel, p.CompetitorResponse,
			})
		}
		return b, nil

	case "sales":
		b := port.Batch{Table: table, Columns: []string{
			"date", "product_id", "customer_id", "store_id",
			"sales_quantity", "sales_revenue", "promo_flag", "holiday_flag",
		}}
		for _, s := range ds.Sales {
			b.Rows = append(b.Rows, []any{
				s.Date, s.ProductID, s.CustomerID, s.StoreID,
				s.Quantity, s.Revenue, s.PromoFlag, nullableString(s.Holiday),
			})
		}
		return b, nil

	case "shipments":
		b := port.Batch{Table: table, Columns: []string{
			"shipment_id", "product_id", "transport_mode", "tracking_number",
			"departure", "arrival", "status",
		}}
		for _, s := range ds.Shipments {
			b.Rows = append(b.Rows, []any{
				s.ID, s.ProductID, string(s.TransportMode), s.TrackingNumber,
				s.Departure, s.Arrival, string(s.Status),
			})
		}
		return b, nil

	case "market_trends":
		b := port.Batch{Table: table, Columns: []string{
			"date", "product_id", "temperature", "weather_condition",
			"social_media_mentions", "competitor_analysis_score", "cpi_change",
		}}
		for _, m := range ds.MarketSignals {
			b.Rows = append(b.Rows, []any{
				m.WeekEnding, m.ProductID, m.Temperature, m.WeatherCondition,
				m.SocialMediaMentions, m.CompetitorAnalysisScore, m.CPIChange,
			})
		}
		return b, nil
	}
	return port.Batch{}, fmt.Errorf("unknown table %q", table)
}

// Batches returns all tables in publish order.
func (ds *Dataset) Batches() ([]port.Batch, error) {
	batches := make([]port.Batch, 0, len(TableOrder))
	for _, table := range TableOrder {
		b, err := ds.Batch(table)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
