package handler

import (
	catalogapp "github.com/bistro/backend/internal/application/catalog"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/bistro/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemHandler handles menu item API endpoints
type MenuItemHandler struct {
	BaseHandler
	menuService *catalogapp.MenuItemService
}

// NewMenuItemHandler creates a new MenuItemHandler
func NewMenuItemHandler(menuService *catalogapp.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{
		menuService: menuService,
	}
}

// ListMenuItemsRequest represents menu listing query parameters
type ListMenuItemsRequest struct {
	dto.ListRequest
	Category string  `form:"category" binding:"omitempty,max=100"`
	Featured *bool   `form:"featured"`
	PriceMax *string `form:"price_max"`
	PriceMin *string `form:"price_min"`
}

// List returns a page of menu items
func (h *MenuItemHandler) List(c *gin.Context) {
	var req ListMenuItemsRequest
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
	filter.Search = req.Search

	if req.Category != "" {
		filter.Filters["category"] = req.Category
	}
	if req.Featured != nil {
		filter.Filters["featured"] = *req.Featured
	}
	if req.PriceMax != nil {
		price, err := decimal.NewFromString(*req.PriceMax)
		if err != nil {
			h.BadRequest(c, "Invalid price_max")
			return
		}
		filter.Filters["price_max"] = price
	}
	if req.PriceMin != nil {
		price, err := decimal.NewFromString(*req.PriceMin)
		if err != nil {
			h.BadRequest(c, "Invalid price_min")
			return
		}
		filter.Filters["price_min"] = price
	}

	result, err := h.menuService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns a single menu item
func (h *MenuItemHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Create adds a new menu item
func (h *MenuItemHandler) Create(c *gin.Context) {
	var req catalogapp.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.menuService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// Update modifies an existing menu item
func (h *MenuItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req catalogapp.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete removes a menu item
func (h *MenuItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"detail": "Menu item deleted"})
}
