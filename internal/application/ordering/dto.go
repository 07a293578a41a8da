package ordering

import (
	"time"

	"github.com/bistro/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest represents a request to put a menu item in the cart
// Adding an item already in the cart replaces its line.
type AddCartItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1,max=100"`
}

// CartLineResponse represents a cart line in API responses
type CartLineResponse struct {
	ID         uuid.UUID       `json:"id"`
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// CartResponse represents a customer's cart
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

// UpdateOrderRequest represents a fulfillment update to an order
type UpdateOrderRequest struct {
	DeliveryCrewID *uuid.UUID `json:"delivery_crew_id"`
	Status         *string    `json:"status"`
}

// OrderLineResponse represents an order line in API responses
type OrderLineResponse struct {
	ID         uuid.UUID       `json:"id"`
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	CustomerID     uuid.UUID           `json:"customer_id"`
	DeliveryCrewID *uuid.UUID          `json:"delivery_crew_id"`
	Status         string              `json:"status"`
	Total          decimal.Decimal     `json:"total"`
	PlacedAt       time.Time           `json:"placed_at"`
	Lines          []OrderLineResponse `json:"lines"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Version        int                 `json:"version"`
}

func toCartResponse(lines []ordering.CartLine) *CartResponse {
	resp := &CartResponse{
		Lines: make([]CartLineResponse, 0, len(lines)),
		Total: decimal.Zero,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ID:         l.ID,
			MenuItemID: l.MenuItemID,
			Title:      l.Title,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			LineTotal:  l.LineTotal,
		})
		resp.Total = resp.Total.Add(l.LineTotal)
	}
	return resp
}

func toOrderResponse(order *ordering.Order) *OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, OrderLineResponse{
			ID:         l.ID,
			MenuItemID: l.MenuItemID,
			Title:      l.Title,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			LineTotal:  l.LineTotal,
		})
	}
	return &OrderResponse{
		ID:             order.ID,
		CustomerID:     order.CustomerID,
		DeliveryCrewID: order.DeliveryCrewID,
		Status:         order.Status.String(),
		Total:          order.Total,
		PlacedAt:       order.PlacedAt,
		Lines:          lines,
		UpdatedAt:      order.UpdatedAt,
		Version:        order.Version,
	}
}
