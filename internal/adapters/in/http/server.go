// Package http exposes the order lifecycle over a JSON REST API.
// Handlers translate HTTP requests into commands and queries and map
// application errors onto status codes; they hold no business logic.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorIDHeader optionally identifies who requested a status change.
// Absent header means the change is attributed to the system.
const ActorIDHeader = "X-Actor-ID"

// Server wires HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getBuyerOrdersHandler   queries.GetBuyerOrdersQueryHandler
	getPartnerOrdersHandler queries.GetPartnerOrdersQueryHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getStatusHistoryHandler queries.GetOrderStatusHistoryQueryHandler
	containsDesignsHandler  queries.OrderContainsPartnerDesignsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getPartnerOrdersHandler queries.GetPartnerOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getStatusHistoryHandler queries.GetOrderStatusHistoryQueryHandler,
	containsDesignsHandler queries.OrderContainsPartnerDesignsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getBuyerOrdersHandler:    getBuyerOrdersHandler,
		getPartnerOrdersHandler:  getPartnerOrdersHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getStatusHistoryHandler:  getStatusHistoryHandler,
		containsDesignsHandler:   containsDesignsHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.GET("/orders/:orderId/history", s.GetOrderStatusHistory)
	api.GET("/orders/:orderId/contains-design", s.OrderContainsPartnerDesigns)
	api.GET("/buyers/:buyerId/orders", s.GetBuyerOrders)
	api.GET("/partners/:partnerId/orders", s.GetPartnerOrders)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(request.BuyerID)
	if err != nil {
		return badRequest(ctx, "Invalid buyer ID: "+request.BuyerID)
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		variantID, parseErr := kernel.UUIDFromString(item.VariantID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid variant ID: "+item.VariantID)
		}
		lines = append(lines, commands.OrderLine{VariantID: variantID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, buyerID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, orderCreatedResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+ctx.Param("orderId"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
// The X-Actor-ID header attributes the change to a user; without it the
// change is recorded as system-initiated.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+ctx.Param("orderId"))
	}

	var request updateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+request.Status)
	}

	var actorID *kernel.UUID
	if header := ctx.Request().Header.Get(ActorIDHeader); header != "" {
		parsed, parseErr := kernel.UUIDFromString(header)
		if parseErr != nil {
			return badRequest(ctx, "Invalid actor ID: "+header)
		}
		actorID = &parsed
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, request.Notes, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStatusHistory handles GET /api/v1/orders/:orderId/history.
func (s *Server) GetOrderStatusHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+ctx.Param("orderId"))
	}

	query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]statusHistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = statusHistoryEntryResponse{
			ID:        entry.ID.String(),
			Status:    entry.Status,
			Notes:     entry.Notes,
			UpdatedBy: entry.UpdatedBy,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderContainsPartnerDesigns handles GET /api/v1/orders/:orderId/contains-design.
func (s *Server) OrderContainsPartnerDesigns(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+ctx.Param("orderId"))
	}

	partnerID, err := kernel.UUIDFromString(ctx.QueryParam("partnerId"))
	if err != nil {
		return badRequest(ctx, "Invalid partner ID: "+ctx.QueryParam("partnerId"))
	}

	query, err := queries.NewOrderContainsPartnerDesignsQuery(orderID, partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	contains, err := s.containsDesignsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, containsDesignResponse{Contains: contains})
}

// GetBuyerOrders handles GET /api/v1/buyers/:buyerId/orders.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	buyerID, err := kernel.UUIDFromString(ctx.Param("buyerId"))
	if err != nil {
		return badRequest(ctx, "Invalid buyer ID: "+ctx.Param("buyerId"))
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summaries, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]orderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = toOrderSummaryResponse(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPartnerOrders handles GET /api/v1/partners/:partnerId/orders.
func (s *Server) GetPartnerOrders(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("partnerId"))
	if err != nil {
		return badRequest(ctx, "Invalid partner ID: "+ctx.Param("partnerId"))
	}

	page, pageSize, err := parsePaging(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetPartnerOrdersQuery(partnerID, page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getPartnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedOrdersResponse(result))
}

// GetAllOrders handles GET /api/v1/orders. Intended for back-office use.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	page, pageSize, err := parsePaging(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetAllOrdersQuery(page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedOrdersResponse(result))
}

func parsePaging(ctx echo.Context) (page, pageSize int, err error) {
	page, pageSize = 0, 20

	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 0 {
			return 0, 0, errors.New("page must be a non-negative integer")
		}
	}
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return 0, 0, errors.New("pageSize must be a positive integer")
		}
	}
	return page, pageSize, nil
}

// mapError translates application errors into HTTP responses.
// NotFound maps to 404; rejected transitions and validation failures map
// to 400, with the transition message naming both states; everything else
// is a 500.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
