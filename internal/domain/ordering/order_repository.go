package ordering

import (
	"context"

	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by ID, including its lines
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByCustomer finds all orders placed by a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Order, error)

	// FindByDeliveryCrew finds all orders assigned to a crew member
	FindByDeliveryCrew(ctx context.Context, crewID uuid.UUID, filter shared.Filter) ([]Order, error)

	// CreateFromCart atomically creates an order from the customer's
	// cart and clears the cart within a single transaction
	CreateFromCart(ctx context.Context, customerID uuid.UUID) (*Order, error)

	// Save updates an existing order
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order and its lines
	Delete(ctx context.Context, id uuid.UUID) error
}
