package domain

import "time"

type TransportMode string

const (
	TransportTruck TransportMode = "Truck"
	TransportAir   TransportMode = "Air"
	TransportSea   TransportMode = "Sea"
	TransportRail  TransportMode = "Rail"
)

var TransportModes = []TransportMode{TransportTruck, TransportAir, TransportSea, TransportRail}

type ShipmentStatus string

const (
	ShipmentDelivered ShipmentStatus = "Delivered"
	ShipmentInTransit ShipmentStatus = "In Transit"
	ShipmentDelayed   ShipmentStatus = "Delayed"
)

var ShipmentStatuses = []ShipmentStatus{ShipmentDelivered, ShipmentInTransit, ShipmentDelayed}

var (
	RestockCadences = []int{7, 14, 30}
	BinLocations    = []string{"A1", "B2", "C3", "D4"}
	LeadTimes       = []int{7, 14, 21, 30}
	WarrantyYears   = []int{1, 2, 3}
)

// InventoryRecord covers exactly one (product, warehouse) pair.
type InventoryRecord struct {
	ProductID        string
	Warehouse        string
	StockLevel       int
	RestockFrequency int
	StockLocation    string
	OrderQuantity    int
	RestockDate      time.Time
}

// ShipmentRecord always arrives on or after its departure.
type ShipmentRecord struct {
	ID             string
	ProductID      string
	TransportMode  TransportMode
	TrackingNumber string
	Departure      time.Time
	Arrival        time.Time
	Status         ShipmentStatus
}
