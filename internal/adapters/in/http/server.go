// Package http exposes the application's use cases over a JSON REST API.
package http

import (
	"errors"
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	rejectOrderHandler      commands.RejectOrderCommandHandler
	markPreparingHandler    commands.MarkPreparingCommandHandler
	markReadyHandler        commands.MarkReadyCommandHandler
	assignCourierHandler    commands.AssignCourierCommandHandler
	smartAssignHandler      commands.SmartAssignCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	createCourierHandler    commands.CreateCourierCommandHandler
	addFoodItemHandler      commands.AddFoodItemCommandHandler
	addToCartHandler        commands.AddToCartCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	getRestaurantOrdersHandler  queries.GetRestaurantOrdersQueryHandler
	getCourierOrdersHandler     queries.GetCourierOrdersQueryHandler
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	markPreparingHandler commands.MarkPreparingCommandHandler,
	markReadyHandler commands.MarkReadyCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	smartAssignHandler commands.SmartAssignCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	addFoodItemHandler commands.AddFoodItemCommandHandler,
	addToCartHandler commands.AddToCartCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		acceptOrderHandler:          acceptOrderHandler,
		rejectOrderHandler:          rejectOrderHandler,
		markPreparingHandler:        markPreparingHandler,
		markReadyHandler:            markReadyHandler,
		assignCourierHandler:        assignCourierHandler,
		smartAssignHandler:          smartAssignHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		createCourierHandler:        createCourierHandler,
		addFoodItemHandler:          addFoodItemHandler,
		addToCartHandler:            addToCartHandler,
		getOrderHandler:             getOrderHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getRestaurantOrdersHandler:  getRestaurantOrdersHandler,
		getCourierOrdersHandler:     getCourierOrdersHandler,
		getAvailableCouriersHandler: getAvailableCouriersHandler,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/preparing", s.MarkPreparing)
	api.POST("/orders/:id/ready", s.MarkReady)
	api.POST("/orders/:id/assign", s.AssignCourier)
	api.POST("/orders/:id/smart-assign", s.SmartAssign)
	api.POST("/orders/:id/complete", s.CompleteDelivery)

	api.GET("/customers/:id/orders", s.GetCustomerOrders)
	api.GET("/restaurants/:id/orders", s.GetRestaurantOrders)
	api.GET("/couriers/:id/orders", s.GetCourierOrders)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers/available", s.GetAvailableCouriers)

	api.POST("/food-items", s.AddFoodItem)
	api.POST("/customers/:id/cart", s.AddToCart)

	e.GET("/health", s.Health)
}

// PlaceOrder handles POST /api/v1/orders - places an order from the
// customer's current cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+request.CustomerID)
	}
	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+request.RestaurantID)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, restaurantID, request.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(result))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewAcceptOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewRejectOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkPreparing handles POST /api/v1/orders/:id/preparing.
func (s *Server) MarkPreparing(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkPreparingCommand(orderID)
		if err != nil {
			return err
		}
		return s.markPreparingHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkReadyCommand(orderID)
		if err != nil {
			return err
		}
		return s.markReadyHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// AssignCourier handles POST /api/v1/orders/:id/assign - assigns the courier
// named in the request body.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AssignCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+request.CourierID)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SmartAssign handles POST /api/v1/orders/:id/smart-assign - picks a courier
// from the available pool.
func (s *Server) SmartAssign(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewSmartAssignCommand(orderID)
		if err != nil {
			return err
		}
		return s.smartAssignHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCompleteDeliveryCommand(orderID)
		if err != nil {
			return err
		}
		return s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	orderListID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(orderListID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetRestaurantOrders handles GET /api/v1/restaurants/:id/orders.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetCourierOrders handles GET /api/v1/couriers/:id/orders.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	courierID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetCourierOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// CreateCourier handles POST /api/v1/couriers - registers an available courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var request CreateCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, request.Name, request.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: courierID.String()})
}

// GetAvailableCouriers handles GET /api/v1/couriers/available.
func (s *Server) GetAvailableCouriers(ctx echo.Context) error {
	couriers, err := s.getAvailableCouriersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableCouriersQuery())
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]Courier, len(couriers))
	for i, courier := range couriers {
		response[i] = Courier{
			ID:    courier.ID.String(),
			Name:  courier.Name,
			Phone: courier.Phone,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddFoodItem handles POST /api/v1/food-items - registers a catalog entry.
func (s *Server) AddFoodItem(ctx echo.Context) error {
	var request AddFoodItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+request.RestaurantID)
	}

	price, err := kernel.MoneyFromString(request.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+request.Price)
	}

	foodID := kernel.NewUUID()
	cmd, err := commands.NewAddFoodItemCommand(foodID, restaurantID, request.Name, price)
	if err != nil {
		return badRequest(ctx, "Invalid food item data: "+err.Error())
	}

	if err = s.addFoodItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: foodID.String()})
}

// AddToCart handles POST /api/v1/customers/:id/cart - adds a catalog item to
// the customer's cart, accumulating quantity for repeated items.
func (s *Server) AddToCart(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var request AddToCartRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	foodID, err := kernel.UUIDFromString(request.FoodID)
	if err != nil {
		return badRequest(ctx, "Invalid food id: "+request.FoodID)
	}

	cmd, err := commands.NewAddToCartCommand(customerID, foodID, request.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// transition is the shared shape of the body-less order lifecycle endpoints.
func (s *Server) transition(ctx echo.Context, run func(orderID kernel.UUID) error) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = run(orderID); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError translates use case failures to HTTP status codes: missing
// objects map to 404, state conflicts to 409, invalid values to 400, and
// everything else to 500.
func commandError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrCourierUnavailable),
		errors.Is(err, services.ErrNoCourierAvailable),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrFoodItemIsNotAvailable):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
