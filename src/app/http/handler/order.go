package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"storefront/src/app/http/dto"
	"storefront/src/app/http/response"
	"storefront/src/app/middleware"
	"storefront/src/core/usecase"
)

// OrderHandler handles the order placement endpoints.
type OrderHandler struct {
	orderService *usecase.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(orderService *usecase.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// Create places a new order.
// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req.CustomerID, req.ProductName, req.Quantity, req.UnitPrice)
	if err != nil {
		h.log.Warn("order creation rejected",
			"request_id", middleware.GetRequestID(c),
			"reason", err.Error(),
		)
		response.FromDomainError(c, err)
		return
	}
	response.Created(c, order)
}

// List returns all placed orders.
// GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, orders)
}

// Get returns a single order by id.
// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, order)
}
