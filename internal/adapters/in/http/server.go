// Package http exposes the marketplace workflow over a REST API built on
// Echo. Handlers translate JSON requests into commands and queries, and map
// domain errors onto HTTP status codes: unknown objects become 404, rejected
// input becomes 400 and violated workflow rules become 409.
package http

import (
	"errors"
	"net/http"

	"quadmesh/internal/core/application/usecases/commands"
	"quadmesh/internal/core/application/usecases/queries"
	"quadmesh/internal/core/domain/model/escrow"
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerCustomerHandler    commands.RegisterCustomerCommandHandler
	registerRestaurantHandler  commands.RegisterRestaurantCommandHandler
	registerRiderHandler       commands.RegisterRiderCommandHandler
	placeOrderHandler          commands.PlaceOrderCommandHandler
	processPaymentHandler      commands.ProcessPaymentCommandHandler
	restaurantConfirmHandler   commands.RestaurantConfirmCommandHandler
	riderAcceptHandler         commands.RiderAcceptCommandHandler
	riderRejectHandler         commands.RiderRejectCommandHandler
	arrivedAtRestaurantHandler commands.RiderArrivedAtRestaurantCommandHandler
	arrivedAtDeliveryHandler   commands.RiderArrivedAtDeliveryCommandHandler
	confirmPickupHandler       commands.ConfirmPickupCommandHandler
	confirmDeliveryHandler     commands.ConfirmDeliveryCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler

	getOrderJourneyHandler queries.GetOrderJourneyQueryHandler
	getActiveOrdersHandler *queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The active orders handler is optional; it is only available in
// relational storage mode and the endpoint returns 501 without it.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	registerRestaurantHandler commands.RegisterRestaurantCommandHandler,
	registerRiderHandler commands.RegisterRiderCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	restaurantConfirmHandler commands.RestaurantConfirmCommandHandler,
	riderAcceptHandler commands.RiderAcceptCommandHandler,
	riderRejectHandler commands.RiderRejectCommandHandler,
	arrivedAtRestaurantHandler commands.RiderArrivedAtRestaurantCommandHandler,
	arrivedAtDeliveryHandler commands.RiderArrivedAtDeliveryCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderJourneyHandler queries.GetOrderJourneyQueryHandler,
	getActiveOrdersHandler *queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		registerCustomerHandler:    registerCustomerHandler,
		registerRestaurantHandler:  registerRestaurantHandler,
		registerRiderHandler:       registerRiderHandler,
		placeOrderHandler:          placeOrderHandler,
		processPaymentHandler:      processPaymentHandler,
		restaurantConfirmHandler:   restaurantConfirmHandler,
		riderAcceptHandler:         riderAcceptHandler,
		riderRejectHandler:         riderRejectHandler,
		arrivedAtRestaurantHandler: arrivedAtRestaurantHandler,
		arrivedAtDeliveryHandler:   arrivedAtDeliveryHandler,
		confirmPickupHandler:       confirmPickupHandler,
		confirmDeliveryHandler:     confirmDeliveryHandler,
		cancelOrderHandler:         cancelOrderHandler,
		getOrderJourneyHandler:     getOrderJourneyHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.POST("/restaurants", s.RegisterRestaurant)
	api.POST("/riders", s.RegisterRider)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id/journey", s.GetOrderJourney)
	api.POST("/orders/:id/payment", s.ProcessPayment)
	api.POST("/orders/:id/restaurant-confirm", s.RestaurantConfirm)
	api.POST("/orders/:id/accept", s.RiderAccept)
	api.POST("/orders/:id/reject", s.RiderReject)
	api.POST("/orders/:id/arrived-at-restaurant", s.RiderArrivedAtRestaurant)
	api.POST("/orders/:id/arrived-at-delivery", s.RiderArrivedAtDelivery)
	api.POST("/orders/:id/pickup", s.ConfirmPickup)
	api.POST("/orders/:id/delivery", s.ConfirmDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewLocation(req.DeliveryLocation.Latitude, req.DeliveryLocation.Longitude, req.DeliveryLocation.Address)
	if err != nil {
		return badRequest(ctx, "Invalid delivery location: "+err.Error())
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, req.Name, req.Email, req.Phone, location)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customerID.String()})
}

// RegisterRestaurant handles POST /api/v1/restaurants.
func (s *Server) RegisterRestaurant(ctx echo.Context) error {
	var req RegisterRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewLocation(req.Location.Latitude, req.Location.Longitude, req.Location.Address)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRestaurantCommand(restaurantID, req.Name, location, req.Email, req.Phone, req.BankAccount)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant data: "+err.Error())
	}

	if err := s.registerRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: restaurantID.String()})
}

// RegisterRider handles POST /api/v1/riders.
func (s *Server) RegisterRider(ctx echo.Context) error {
	var req RegisterRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewLocation(req.Location.Latitude, req.Location.Longitude, req.Location.Address)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRiderCommand(riderID, req.Name, req.Email, req.Phone, location, req.BankAccount)
	if err != nil {
		return badRequest(ctx, "Invalid rider data: "+err.Error())
	}

	if err := s.registerRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: riderID.String()})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, restaurantID, items, req.DeliveryFee)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ProcessPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestaurantConfirm handles POST /api/v1/orders/:id/restaurant-confirm.
func (s *Server) RestaurantConfirm(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRestaurantConfirmCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.restaurantConfirmHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RiderAccept handles POST /api/v1/orders/:id/accept.
func (s *Server) RiderAccept(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RiderActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewRiderAcceptCommand(orderID, riderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.riderAcceptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RiderReject handles POST /api/v1/orders/:id/reject.
func (s *Server) RiderReject(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RiderActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewRiderRejectCommand(orderID, riderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.riderRejectHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RiderArrivedAtRestaurant handles POST /api/v1/orders/:id/arrived-at-restaurant.
func (s *Server) RiderArrivedAtRestaurant(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RiderArrivalRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, location, err := req.parse()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRiderArrivedAtRestaurantCommand(orderID, riderID, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.arrivedAtRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RiderArrivedAtDelivery handles POST /api/v1/orders/:id/arrived-at-delivery.
func (s *Server) RiderArrivedAtDelivery(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RiderArrivalRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, location, err := req.parse()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRiderArrivedAtDeliveryCommand(orderID, riderID, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.arrivedAtDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/v1/orders/:id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmPickupCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:id/delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderJourney handles GET /api/v1/orders/:id/journey.
func (s *Server) GetOrderJourney(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderJourneyQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	journey, err := s.getOrderJourneyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, journeyResponseFromQuery(journey))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	if s.getActiveOrdersHandler == nil {
		return ctx.JSON(http.StatusNotImplemented, ErrorResponse{
			Code:    http.StatusNotImplemented,
			Message: "Active order listing requires relational storage",
		})
	}

	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			ID:          o.ID.String(),
			CustomerID:  o.CustomerID.String(),
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError converts command and query failures into HTTP responses. Unknown
// objects map to 404, broken workflow rules to 409 and everything else to 500.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidStateTransition),
		errors.Is(err, order.ErrAcceptanceDeadlinePassed),
		errors.Is(err, order.ErrNoRiderAssigned),
		errors.Is(err, escrow.ErrRestaurantAlreadyPaid),
		errors.Is(err, escrow.ErrRiderHalfAlreadyPaid),
		errors.Is(err, escrow.ErrRiderFullAlreadyPaid),
		errors.Is(err, escrow.ErrRiderHalfNotPaid),
		errors.Is(err, commands.ErrRestaurantIsNotActive),
		errors.Is(err, commands.ErrRiderIsNotAssignedToOrder),
		errors.Is(err, commands.ErrRiderIsTooFarAway):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
