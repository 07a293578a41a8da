package ordering

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// FindByCustomer finds all cart lines belonging to a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]CartLine, error)

	// FindByCustomerAndItem finds the cart line for a specific menu item
	FindByCustomerAndItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*CartLine, error)

	// Save creates or updates a cart line
	Save(ctx context.Context, line *CartLine) error

	// ClearByCustomer deletes all cart lines belonging to a customer
	// and returns the number of lines removed
	ClearByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}
