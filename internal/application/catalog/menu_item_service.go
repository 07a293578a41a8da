package catalog

import (
	"context"

	"github.com/bistro/backend/internal/domain/catalog"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MenuItemService handles menu-related business operations
type MenuItemService struct {
	menuRepo catalog.MenuItemRepository
}

// NewMenuItemService creates a new MenuItemService
func NewMenuItemService(menuRepo catalog.MenuItemRepository) *MenuItemService {
	return &MenuItemService{menuRepo: menuRepo}
}

// Create creates a new menu item
func (s *MenuItemService) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := catalog.NewMenuItem(req.Title, req.Price, req.Category)
	if err != nil {
		return nil, err
	}

	if req.Featured != nil {
		item.SetFeatured(*req.Featured)
	}

	if err := s.menuRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return toMenuItemResponse(item), nil
}

// GetByID retrieves a menu item by ID
func (s *MenuItemService) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemResponse, error) {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// List retrieves menu items matching the filter
func (s *MenuItemService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[MenuItemResponse], error) {
	items, err := s.menuRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.menuRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toMenuItemResponse(&items[i]))
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates a menu item
func (s *MenuItemService) Update(ctx context.Context, id uuid.UUID, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := item.Title
	if req.Title != nil {
		title = *req.Title
	}
	category := item.Category
	if req.Category != nil {
		category = *req.Category
	}
	if err := item.Update(title, category); err != nil {
		return nil, err
	}

	if req.Price != nil {
		if err := item.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}

	if req.Featured != nil {
		item.SetFeatured(*req.Featured)
	}

	if err := s.menuRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return toMenuItemResponse(item), nil
}

// Delete deletes a menu item
func (s *MenuItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.menuRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.menuRepo.Delete(ctx, id)
}
