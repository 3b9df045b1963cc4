package cmd

import (
	"time"

	"quadmesh/internal/adapters/out/inmemory"
	"quadmesh/internal/adapters/out/postgres"
	"quadmesh/internal/core/application/usecases/commands"
	"quadmesh/internal/core/application/usecases/queries"
	"quadmesh/internal/core/domain/services"
	"quadmesh/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires storage, the shared dispatch queue and every command
// and query handler. The gorm connection is nil in in-memory storage mode, in
// which case the database-backed active orders query is unavailable.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	queue      *services.DispatchQueue

	gpsToleranceMeters float64
	acceptanceTimeout  time.Duration
}

// NewCompositionRoot builds the object graph for the configured storage mode.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	var uowFactory ports.UnitOfWorkFactory
	if configs.StorageMode == "inmemory" {
		uowFactory = inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	} else {
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}

	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         uowFactory,
		queue:              services.NewDispatchQueue(),
		gpsToleranceMeters: configs.GpsToleranceMeters,
		acceptanceTimeout:  time.Duration(configs.RiderAcceptanceTimeoutMinutes) * time.Minute,
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterRestaurantCommandHandler() commands.RegisterRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterRiderCommandHandler() commands.RegisterRiderCommandHandler {
	return commands.NewRegisterRiderCommandHandler(c.fullUoWFactory(), c.queue, c.acceptanceTimeout)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRestaurantConfirmCommandHandler() commands.RestaurantConfirmCommandHandler {
	return commands.NewRestaurantConfirmCommandHandler(c.fullUoWFactory(), c.queue, c.acceptanceTimeout)
}

func (c *CompositionRoot) CreateRiderAcceptCommandHandler() commands.RiderAcceptCommandHandler {
	return commands.NewRiderAcceptCommandHandler(c.fullUoWFactory(), c.queue, c.acceptanceTimeout)
}

func (c *CompositionRoot) CreateRiderRejectCommandHandler() commands.RiderRejectCommandHandler {
	return commands.NewRiderRejectCommandHandler(c.fullUoWFactory(), c.queue, c.acceptanceTimeout)
}

func (c *CompositionRoot) CreateRiderArrivedAtRestaurantCommandHandler() commands.RiderArrivedAtRestaurantCommandHandler {
	return commands.NewRiderArrivedAtRestaurantCommandHandler(c.fullUoWFactory(), c.gpsToleranceMeters)
}

func (c *CompositionRoot) CreateRiderArrivedAtDeliveryCommandHandler() commands.RiderArrivedAtDeliveryCommandHandler {
	return commands.NewRiderArrivedAtDeliveryCommandHandler(c.fullUoWFactory(), c.gpsToleranceMeters)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.fullUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateReassignExpiredCommandHandler() commands.ReassignExpiredCommandHandler {
	return commands.NewReassignExpiredCommandHandler(c.fullUoWFactory(), c.queue, c.acceptanceTimeout)
}

func (c *CompositionRoot) CreateGetOrderJourneyQueryHandler() queries.GetOrderJourneyQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderJourneyQueryHandler(uow.OrderRepository(), uow.RiderRepository())
}

// CreateGetActiveOrdersQueryHandler returns nil in in-memory storage mode.
func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() *queries.GetActiveOrdersQueryHandler {
	if c.gormDB == nil {
		return nil
	}
	handler := queries.NewGetActiveOrdersQueryHandler(c.gormDB)
	return &handler
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
