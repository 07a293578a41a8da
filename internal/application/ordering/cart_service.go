package ordering

import (
	"context"
	"errors"

	"github.com/bistro/backend/internal/domain/catalog"
	"github.com/bistro/backend/internal/domain/ordering"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CartService handles cart operations for a customer
type CartService struct {
	cartRepo ordering.CartRepository
	menuRepo catalog.MenuItemRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo ordering.CartRepository, menuRepo catalog.MenuItemRepository) *CartService {
	return &CartService{cartRepo: cartRepo, menuRepo: menuRepo}
}

// View returns the customer's cart with its running total
func (s *CartService) View(ctx context.Context, customerID uuid.UUID) (*CartResponse, error) {
	lines, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(lines), nil
}

// AddItem puts a menu item in the cart, snapshotting its current price
// If the item is already in the cart its line is replaced, not
// incremented.
func (s *CartService) AddItem(ctx context.Context, customerID uuid.UUID, req AddCartItemRequest) (*CartResponse, error) {
	item, err := s.menuRepo.FindByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Menu item not found")
		}
		return nil, err
	}

	existing, err := s.cartRepo.FindByCustomerAndItem(ctx, customerID, item.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := existing.Replace(req.Quantity, item.Price); err != nil {
			return nil, err
		}
		existing.Title = item.Title
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		line, err := ordering.NewCartLine(customerID, item.ID, item.Title, req.Quantity, item.Price)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, line); err != nil {
			return nil, err
		}
	}

	return s.View(ctx, customerID)
}

// Clear empties the customer's cart
func (s *CartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	_, err := s.cartRepo.ClearByCustomer(ctx, customerID)
	return err
}
