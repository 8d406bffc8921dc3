// Package http exposes the application's use cases over REST. Handlers bind
// and validate requests, translate them into commands or queries, and map
// domain errors onto HTTP status codes: validation failures are 400, unknown
// actors 401, ownership failures 403, missing objects 404, and conflicts the
// caller may retry against fresh state (stock, versions, illegal transitions)
// are 409.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// Actor identity headers. A real deployment would derive the actor from an
// authenticated session; the engine only needs to know who is acting.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server implements the HTTP surface for handling requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler           commands.CheckoutCommandHandler
	transitionOrderHandler    commands.TransitionOrderCommandHandler
	transitionDeliveryHandler commands.TransitionDeliveryCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	confirmPaymentHandler     commands.ConfirmPaymentCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getOrdersForSellerHandler   queries.GetOrdersForSellerQueryHandler
	getPendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	transitionDeliveryHandler commands.TransitionDeliveryCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersForSellerHandler queries.GetOrdersForSellerQueryHandler,
	getPendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:             checkoutHandler,
		transitionOrderHandler:      transitionOrderHandler,
		transitionDeliveryHandler:   transitionDeliveryHandler,
		assignDriverHandler:         assignDriverHandler,
		confirmPaymentHandler:       confirmPaymentHandler,
		getOrderHandler:             getOrderHandler,
		getOrdersForSellerHandler:   getOrdersForSellerHandler,
		getPendingDeliveriesHandler: getPendingDeliveriesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/checkout", s.Checkout)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/transitions", s.TransitionOrder)
	api.GET("/sellers/:id/orders", s.GetOrdersForSeller)
	api.GET("/deliveries/pending", s.GetPendingDeliveries)
	api.POST("/deliveries/:id/transitions", s.TransitionDelivery)
	api.POST("/deliveries/:id/driver", s.AssignDriver)
	api.POST("/payments/confirmations", s.ConfirmPayment)
}

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CheckoutRequest is the payload for POST /api/v1/checkout. Lines are
// optional; an empty list means "check out my whole cart".
type CheckoutRequest struct {
	ShippingAddressID string                `json:"shipping_address_id"`
	BillingAddressID  *string               `json:"billing_address_id,omitempty"`
	PaymentMethod     string                `json:"payment_method"`
	Lines             []CheckoutLineRequest `json:"lines,omitempty"`
}

// CheckoutLineRequest is one explicit product line in a checkout request.
type CheckoutLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutResponse carries the identifier of the newly placed order.
type CheckoutResponse struct {
	ID string `json:"id"`
}

// TransitionRequest is the payload for order and delivery transition endpoints.
type TransitionRequest struct {
	Target string `json:"target"`
}

// AssignDriverRequest is the payload for POST /api/v1/deliveries/:id/driver.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// ConfirmPaymentRequest is the payload the payment provider's webhook posts.
type ConfirmPaymentRequest struct {
	OrderID   string `json:"order_id"`
	Reference string `json:"reference"`
}

// Checkout handles POST /api/v1/checkout - places an order for the acting buyer.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var req CheckoutRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shippingAddressID, err := kernel.UUIDFromString(req.ShippingAddressID)
	if err != nil {
		return badRequest(ctx, "Invalid shipping address id: "+err.Error())
	}

	var billingAddressID *kernel.UUID
	if req.BillingAddressID != nil {
		id, billingErr := kernel.UUIDFromString(*req.BillingAddressID)
		if billingErr != nil {
			return badRequest(ctx, "Invalid billing address id: "+billingErr.Error())
		}
		billingAddressID = &id
	}

	lines := make([]commands.CheckoutLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid product id: "+lineErr.Error())
		}
		lines = append(lines, commands.CheckoutLine{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(
		orderID,
		actor.ID(),
		shippingAddressID,
		billingAddressID,
		req.PaymentMethod,
		lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order scoped to the
// acting party.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/transitions - moves an
// order to a new status on behalf of the acting party.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersForSeller handles GET /api/v1/sellers/:id/orders - lists orders
// containing the seller's items, scoped to those items.
func (s *Server) GetOrdersForSeller(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	sellerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid seller id: "+err.Error())
	}

	// Sellers may only list their own orders; admins may list anyone's.
	if actor.Role() != auth.RoleAdmin && !actor.ID().IsEqual(sellerID) {
		return forbidden(ctx, "cannot list another seller's orders")
	}

	query, err := queries.NewGetOrdersForSellerQuery(sellerID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	response, err := s.getOrdersForSellerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingDeliveries handles GET /api/v1/deliveries/pending - lists
// deliveries awaiting driver assignment.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	if actor.Role() != auth.RoleAdmin {
		return forbidden(ctx, "only admins may list pending deliveries")
	}

	query := queries.NewGetPendingDeliveriesQuery()
	response, err := s.getPendingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionDelivery handles POST /api/v1/deliveries/:id/transitions - moves
// a delivery through its lifecycle on behalf of the acting party.
func (s *Server) TransitionDelivery(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewTransitionDeliveryCommand(deliveryID, target, actor)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.transitionDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/deliveries/:id/driver - assigns a driver
// to a delivery. Admin only.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/payments/confirmations - records a
// payment provider confirmation for later application by the sweep job.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var req ConfirmPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, req.Reference)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

func (s *Server) actorFromRequest(ctx echo.Context) (auth.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return auth.Actor{}, err
	}

	role, err := auth.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return auth.Actor{}, err
	}

	return auth.NewActor(id, role)
}

// domainError maps a use case error onto the HTTP status the caller should
// see. Conflicts share one bucket: the resource moved, re-fetch and decide
// again.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, auth.ErrForbidden):
		return respond(ctx, http.StatusForbidden, err)
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, delivery.ErrIllegalTransition),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, product.ErrProductUnavailable),
		errors.Is(err, ports.ErrVersionConflict),
		errors.Is(err, commands.ErrDeliveryOwnsCompletion),
		errors.Is(err, commands.ErrPaymentAlreadyRecorded):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Unknown actor: " + err.Error(),
	})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: message,
	})
}
