package ordering

import (
	"strings"
	"time"

	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine represents one menu item in a customer's cart
// Title and UnitPrice are snapshots of the menu item at the time the
// line was added, so a later catalog price change does not silently
// reprice an existing cart.
type CartLine struct {
	shared.BaseEntity
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_customer_item"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_customer_item"`
	Title      string          `gorm:"type:varchar(200);not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (CartLine) TableName() string {
	return "cart_lines"
}

// NewCartLine creates a cart line with a snapshot of the menu item
func NewCartLine(customerID, menuItemID uuid.UUID, title string, quantity int, unitPrice decimal.Decimal) (*CartLine, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	if menuItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MENU_ITEM", "Menu item ID is required")
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be greater than zero")
	}

	return &CartLine{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		MenuItemID: menuItemID,
		Title:      strings.TrimSpace(title),
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		LineTotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Replace sets a new quantity and refreshes the price snapshot
// Adding an item already in the cart replaces the line rather than
// incrementing it.
func (c *CartLine) Replace(quantity int, unitPrice decimal.Decimal) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Unit price must be greater than zero")
	}

	c.Quantity = quantity
	c.UnitPrice = unitPrice
	c.LineTotal = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	c.UpdatedAt = time.Now()

	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
	}
	if quantity > 100 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot exceed 100")
	}
	return nil
}
