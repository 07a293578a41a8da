package catalog

import (
	"time"

	"github.com/bistro/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest represents a request to create a new menu item
type CreateMenuItemRequest struct {
	Title    string          `json:"title" binding:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Category string          `json:"category" binding:"max=100"`
	Featured *bool           `json:"featured"`
}

// UpdateMenuItemRequest represents a request to update a menu item
type UpdateMenuItemRequest struct {
	Title    *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category" binding:"omitempty,max=100"`
	Featured *bool            `json:"featured"`
}

// MenuItemResponse represents a menu item in API responses
type MenuItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Featured  bool            `json:"featured"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

func toMenuItemResponse(item *catalog.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:        item.ID,
		Title:     item.Title,
		Price:     item.Price,
		Featured:  item.Featured,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
		Version:   item.Version,
	}
}
