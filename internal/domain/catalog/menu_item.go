package catalog

import (
	"strings"
	"time"

	"github.com/bistro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MenuItem represents a dish on the menu
// It is the aggregate root for catalog operations
type MenuItem struct {
	shared.BaseAggregateRoot
	Title    string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Featured bool            `gorm:"not null;default:false"`
	Category string          `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// NewMenuItem creates a new menu item
func NewMenuItem(title string, price decimal.Decimal, category string) (*MenuItem, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	return &MenuItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Price:             price,
		Category:          strings.TrimSpace(category),
	}, nil
}

// Update updates the item's title and category
func (m *MenuItem) Update(title, category string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}

	m.Title = strings.TrimSpace(title)
	m.Category = strings.TrimSpace(category)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetPrice changes the item's price
// Cart and order lines keep the price they snapshotted; only future
// additions see the new price.
func (m *MenuItem) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}

	m.Price = price
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetFeatured flags or unflags the item as featured
func (m *MenuItem) SetFeatured(featured bool) {
	m.Featured = featured
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}
	return nil
}

func validateCategory(category string) error {
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	return nil
}
