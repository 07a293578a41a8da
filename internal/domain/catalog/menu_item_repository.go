package catalog

import (
	"context"

	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MenuItemRepository defines the interface for menu item persistence
type MenuItemRepository interface {
	// FindByID finds a menu item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)

	// FindAll finds all menu items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]MenuItem, error)

	// Save creates or updates a menu item
	Save(ctx context.Context, item *MenuItem) error

	// Delete deletes a menu item
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts menu items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
