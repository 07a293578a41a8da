package persistence

import (
	"context"
	"errors"

	"github.com/bistro/backend/internal/domain/catalog"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindByID finds a menu item by its ID
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.MenuItem, error) {
	var item catalog.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds all menu items matching the filter
func (r *GormMenuItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.MenuItem, error) {
	var items []catalog.MenuItem
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.MenuItem{}), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a menu item
func (r *GormMenuItemRepository) Save(ctx context.Context, item *catalog.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes a menu item
func (r *GormMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts menu items matching the filter
func (r *GormMenuItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.MenuItem{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormMenuItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := validateSortField(filter.OrderBy, menuItemSortFields, "title")
	orderDir := validateSortOrder(filter.OrderDir, "ASC")
	query = query.Order(orderBy + " " + orderDir)

	return query
}

func (r *GormMenuItemRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "featured":
			query = query.Where("featured = ?", value)
		case "price_max":
			query = query.Where("price <= ?", value)
		case "price_min":
			query = query.Where("price >= ?", value)
		}
	}

	return query
}
