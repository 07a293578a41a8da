package handler

import (
	orderingapp "github.com/bistro/backend/internal/application/ordering"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/bistro/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// ListOrdersRequest represents order listing query parameters
type ListOrdersRequest struct {
	dto.ListRequest
	Status string `form:"status" binding:"omitempty,oneof=pending assigned out_for_delivery delivered"`
}

// List returns the orders visible to the authenticated user.
// Managers see all orders, delivery crew their assigned orders,
// customers their own.
func (h *OrderHandler) List(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}

	orders, err := h.orderService.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// Place creates an order from the customer's cart and empties it
func (h *OrderHandler) Place(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	order, err := h.orderService.Place(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID returns a single order if the authenticated user may see it
func (h *OrderHandler) GetByID(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Update applies a fulfillment update: crew assignment by managers,
// status transitions by managers or the assigned crew
func (h *OrderHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req orderingapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete removes an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
