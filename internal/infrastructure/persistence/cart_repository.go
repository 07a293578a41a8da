package persistence

import (
	"context"
	"errors"

	"github.com/bistro/backend/internal/domain/ordering"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByCustomer finds all cart lines belonging to a customer
func (r *GormCartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]ordering.CartLine, error) {
	var lines []ordering.CartLine
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindByCustomerAndItem finds the cart line for a specific menu item
func (r *GormCartRepository) FindByCustomerAndItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*ordering.CartLine, error) {
	var line ordering.CartLine
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND menu_item_id = ?", customerID, menuItemID).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// Save creates or updates a cart line
func (r *GormCartRepository) Save(ctx context.Context, line *ordering.CartLine) error {
	return r.db.WithContext(ctx).Save(line).Error
}

// ClearByCustomer deletes all cart lines belonging to a customer
func (r *GormCartRepository) ClearByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&ordering.CartLine{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
