package persistence

import (
	"context"
	"errors"

	"github.com/bistro/backend/internal/domain/ordering"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID, including its lines
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	return r.findOrders(ctx, r.db.WithContext(ctx).Model(&ordering.Order{}), filter)
}

// FindByCustomer finds all orders placed by a customer
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	query := r.db.WithContext(ctx).Model(&ordering.Order{}).Where("customer_id = ?", customerID)
	return r.findOrders(ctx, query, filter)
}

// FindByDeliveryCrew finds all orders assigned to a crew member
func (r *GormOrderRepository) FindByDeliveryCrew(ctx context.Context, crewID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	query := r.db.WithContext(ctx).Model(&ordering.Order{}).Where("delivery_crew_id = ?", crewID)
	return r.findOrders(ctx, query, filter)
}

// CreateFromCart atomically converts the customer's cart into an order
// The cart lines are read, the order and its lines are inserted, and
// the cart is cleared, all in one transaction. If a concurrent
// checkout already consumed a line the whole transaction rolls back,
// so the cart can never be charged twice.
func (r *GormOrderRepository) CreateFromCart(ctx context.Context, customerID uuid.UUID) (*ordering.Order, error) {
	var order *ordering.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the cart rows so a concurrent checkout of the same cart
		// waits here and then reads an empty cart.
		var lines []ordering.CartLine
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("customer_id = ?", customerID).Find(&lines).Error; err != nil {
			return err
		}

		built, err := ordering.NewOrderFromCart(customerID, lines)
		if err != nil {
			return err
		}

		if err := tx.Omit("Lines").Create(built).Error; err != nil {
			return err
		}
		for i := range built.Lines {
			if err := tx.Create(&built.Lines[i]).Error; err != nil {
				return err
			}
		}

		result := tx.Where("customer_id = ?", customerID).Delete(&ordering.CartLine{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(lines)) {
			return shared.ErrCheckoutFailed
		}

		order = built
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Save updates an existing order
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Omit("Lines").Save(order).Error
}

// Delete deletes an order and its lines
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ordering.OrderLine{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&ordering.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormOrderRepository) findOrders(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]ordering.Order, error) {
	var orders []ordering.Order
	query = r.applyFilter(query, filter)
	if err := query.Preload("Lines").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := validateSortField(filter.OrderBy, orderSortFields, "placed_at")
	defaultDir := "ASC"
	if orderBy == "placed_at" {
		defaultDir = "DESC"
	}
	query = query.Order(orderBy + " " + validateSortOrder(filter.OrderDir, defaultDir))

	return query
}
