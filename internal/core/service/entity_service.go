package service

import (
	"fmt"
	"time"

	"github.com/rl1809/retail-datagen/internal/core/domain"
	"github.com/rl1809/retail-datagen/internal/core/random"
)

// EntityPool holds the frozen customer, store and warehouse pools.
type EntityPool struct {
	Customers  []domain.Customer
	Stores     []string
	Warehouses []string
}

var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West Virginia", "Wisconsin", "Wyoming",
}

// GenerateEntityPool builds the customer, store and warehouse pools.
// Purchase history is anchored to the three years before startDate; the
// last purchase never precedes the first.
func GenerateEntityPool(rng *random.Stream, numCustomers, numStores, numWarehouses int, startDate time.Time) *EntityPool {
	historyLo := startDate.AddDate(-3, 0, 0)

	customers := make([]domain.Customer, 0, numCustomers)
	for i := 1; i <= numCustomers; i++ {
		first := rng.DateBetween(historyLo, startDate)
		last := rng.DateBetween(first, startDate)
		customers = append(customers, domain.Customer{
			ID:            fmt.Sprintf("CUST-%05d", i),
			Age:           rng.IntBetween(18, 80),
			Gender:        random.Choice(rng, domain.Genders),
			Location:      random.Choice(rng, usStates),
			FirstPurchase: first,
			LastPurchase:  last,
			LifetimeValue: round2(rng.Uniform(100, 5000)),
		})
	}

	stores := make([]string, numStores)
	for i := range stores {
		stores[i] = fmt.Sprintf("STORE-%03d", i+1)
	}
	warehouses := make([]string, numWarehouses)
	for i := range warehouses {
		warehouses[i] = fmt.Sprintf("WH-%02d", i+1)
	}

	return &EntityPool{Customers: customers, Stores: stores, Warehouses: warehouses}
}
