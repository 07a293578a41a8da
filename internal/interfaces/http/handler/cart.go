package handler

import (
	orderingapp "github.com/bistro/backend/internal/application/ordering"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart API endpoints
// Every authenticated user has a cart, scoped to their own user id.
type CartHandler struct {
	BaseHandler
	cartService *orderingapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *orderingapp.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// View returns the current customer's cart
func (h *CartHandler) View(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	cart, err := h.cartService.View(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// AddItem puts a menu item in the cart, replacing any existing line
// for the same item
func (h *CartHandler) AddItem(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req orderingapp.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// Clear empties the current customer's cart
func (h *CartHandler) Clear(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), customerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
