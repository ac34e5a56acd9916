package http

import (
	"errors"
	"net/http"

	"garmenttrack/internal/core/application/usecases/commands"
	"garmenttrack/internal/core/application/usecases/queries"
	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/generated/servers"
	"garmenttrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Actor identity headers. The API gateway authenticates the caller and
// forwards the resolved identity; this service only authorizes against it.
const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	approveOrderHandler      commands.ApproveOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	markOrderPaidHandler     commands.MarkOrderPaidCommandHandler
	addTrackingUpdateHandler commands.AddTrackingUpdateCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	addTrackingUpdateHandler commands.AddTrackingUpdateCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		approveOrderHandler:      approveOrderHandler,
		rejectOrderHandler:       rejectOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		markOrderPaidHandler:     markOrderPaidHandler,
		addTrackingUpdateHandler: addTrackingUpdateHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderTimelineHandler:  getOrderTimelineHandler,
	}
}

// GetOrders handles GET /api/v1/orders - retrieves the order list,
// optionally filtered by lifecycle status and/or buyer.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var statusFilter *order.Status
	if params.Status != nil {
		status, err := order.StatusFromString(string(*params.Status))
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
		statusFilter = &status
	}

	var buyerFilter *kernel.UUID
	if params.BuyerId != nil {
		buyerID, err := kernel.UUIDFromBytes(params.BuyerId[:])
		if err != nil {
			return badRequest(ctx, "Invalid buyerId filter: "+err.Error())
		}
		buyerFilter = &buyerID
	}

	query, err := queries.NewGetOrdersQuery(statusFilter, buyerFilter)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(rows))
	for i, row := range rows {
		response[i] = servers.Order{
			Id:            row.ID.Bytes(),
			Code:          row.Code,
			BuyerName:     row.BuyerName,
			ProductName:   row.ProductName,
			Quantity:      row.Quantity,
			PriceCents:    row.PriceCents,
			PaymentMethod: row.PaymentMethod,
			PaymentStatus: row.PaymentStatus,
			Status:        row.Status,
			CreatedAt:     row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places a new order in Pending
// status and returns its generated buyer-facing code.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromBytes(newOrder.Buyer.Id[:])
	if err != nil {
		return badRequest(ctx, "Invalid buyer id: "+err.Error())
	}

	buyer, err := order.NewBuyer(buyerID, newOrder.Buyer.Name, newOrder.Buyer.Email,
		newOrder.Buyer.Phone, newOrder.Buyer.Address, stringValue(newOrder.Buyer.Notes))
	if err != nil {
		return badRequest(ctx, "Invalid buyer data: "+err.Error())
	}

	productID, err := kernel.UUIDFromBytes(newOrder.Product.Id[:])
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	unitPrice, err := kernel.NewMoney(newOrder.Product.UnitPriceCents)
	if err != nil {
		return badRequest(ctx, "Invalid unit price: "+err.Error())
	}

	var images []string
	if newOrder.Product.Images != nil {
		images = *newOrder.Product.Images
	}

	product, err := order.NewProductSnapshot(productID, newOrder.Product.Name,
		newOrder.Product.Category, unitPrice, newOrder.Product.MinOrderQuantity, images)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	paymentMethod, err := order.PaymentMethodFromString(string(newOrder.PaymentMethod))
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, buyer, product,
		newOrder.Quantity, paymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	code, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderPlaced{
		Id:   orderID.Bytes(),
		Code: code.String(),
	})
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve - records a
// manager's approval of a pending order.
func (s *Server) ApproveOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, actorID, actorRole)
	if err != nil {
		return badRequest(ctx, "Invalid approval data: "+err.Error())
	}

	if err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject - records a
// manager's rejection of a pending order.
func (s *Server) RejectOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actorID, actorRole)
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - lets the buyer
// who placed a pending order withdraw it. No role header is required: the
// ownership check inside the handler is the authorization.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(actorIDHeader))
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorIDHeader+" header")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/{orderId}/payment - records the
// payment gateway confirmation for a PayFirst order.
func (s *Server) MarkOrderPaid(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err := s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddTrackingUpdate handles POST /api/v1/orders/{orderId}/tracking - records
// a production checkpoint on an approved order.
func (s *Server) AddTrackingUpdate(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var newUpdate servers.NewTrackingUpdate
	if err := ctx.Bind(&newUpdate); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	checkpoint, err := order.CheckpointFromString(newUpdate.Checkpoint)
	if err != nil {
		return badRequest(ctx, "Invalid checkpoint: "+err.Error())
	}

	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddTrackingUpdateCommand(orderID, checkpoint,
		newUpdate.Location, stringValue(newUpdate.Note), actorID, actorRole)
	if err != nil {
		return badRequest(ctx, "Invalid tracking data: "+err.Error())
	}

	if err := s.addTrackingUpdateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTimeline handles GET /api/v1/orders/{orderId}/timeline - returns
// the derived eight-step production timeline for an order.
func (s *Server) GetOrderTimeline(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	timeline, err := s.getOrderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	steps := make([]servers.TimelineStep, len(timeline.Steps))
	for i, step := range timeline.Steps {
		var updatedBy *openapi_types.UUID
		if step.UpdatedBy != nil {
			id := step.UpdatedBy.Bytes()
			updatedBy = &id
		}

		steps[i] = servers.TimelineStep{
			Checkpoint: step.Checkpoint,
			Completed:  step.Completed,
			Current:    step.Current,
			Location:   step.Location,
			Note:       step.Note,
			UpdatedBy:  updatedBy,
			UpdatedAt:  step.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.OrderTimeline{
		OrderId: timeline.OrderID.Bytes(),
		Code:    timeline.Code,
		Status:  timeline.Status,
		Steps:   steps,
	})
}

// actorFromHeaders extracts the acting user's identity from the forwarded
// identity headers.
func actorFromHeaders(ctx echo.Context) (kernel.UUID, order.Role, error) {
	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(actorIDHeader))
	if err != nil {
		return kernel.UUID{}, order.RoleUnknown,
			errors.New("Missing or invalid " + actorIDHeader + " header")
	}

	actorRole, err := order.RoleFromString(ctx.Request().Header.Get(actorRoleHeader))
	if err != nil {
		return kernel.UUID{}, order.RoleUnknown,
			errors.New("Missing or invalid " + actorRoleHeader + " header")
	}

	return actorID, actorRole, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps a use case error to the HTTP status that describes it.
// Domain validation surfaces as 400, authorization as 403, missing objects
// as 404 and lost optimistic concurrency races or state violations as 409.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, commands.ErrActorIsNotAllowed),
		errors.Is(err, commands.ErrActorIsNotOrderOwner):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidOrderState):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidCheckpoint),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}
