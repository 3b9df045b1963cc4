package inmemory

import (
	"sync"

	"quadmesh/internal/core/domain/model/escrow"
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/domain/model/party"
	"quadmesh/internal/core/domain/model/rider"
)

// Store holds every aggregate of the marketplace in memory. All map access
// goes through the data mutex; the separate transaction mutex serializes
// writers that run inside a unit of work.
type Store struct {
	dataMu sync.RWMutex
	txMu   sync.Mutex

	orders      map[kernel.UUID]*order.Order
	riders      map[kernel.UUID]*rider.Rider
	customers   map[kernel.UUID]*party.Customer
	restaurants map[kernel.UUID]*party.Restaurant
	escrows     map[kernel.UUID]*escrow.Account
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		orders:      make(map[kernel.UUID]*order.Order),
		riders:      make(map[kernel.UUID]*rider.Rider),
		customers:   make(map[kernel.UUID]*party.Customer),
		restaurants: make(map[kernel.UUID]*party.Restaurant),
		escrows:     make(map[kernel.UUID]*escrow.Account),
	}
}
