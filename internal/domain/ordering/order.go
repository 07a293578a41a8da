package ordering

import (
	"time"

	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusAssigned       OrderStatus = "assigned"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// IsValid checks if the status is a known OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAssigned, OrderStatusOutForDelivery, OrderStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can move to the target status
// Delivered is terminal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusAssigned
	case OrderStatusAssigned:
		return target == OrderStatusOutForDelivery || target == OrderStatusDelivered
	case OrderStatusOutForDelivery:
		return target == OrderStatusDelivered
	}
	return false
}

// OrderLine represents one menu item within a placed order
type OrderLine struct {
	shared.BaseEntity
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Title      string          `gorm:"type:varchar(200);not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// Order represents a placed order
// It is the aggregate root for order fulfillment.
type Order struct {
	shared.BaseAggregateRoot
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryCrewID *uuid.UUID      `gorm:"type:uuid;index"`
	Status         OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PlacedAt       time.Time       `gorm:"not null"`
	Lines          []OrderLine     `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrderFromCart creates a pending order from a customer's cart lines
// The order total is the sum of the cart snapshot line totals, so the
// price shown in the cart is the price charged.
func NewOrderFromCart(customerID uuid.UUID, cartLines []CartLine) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	if len(cartLines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Status:            OrderStatusPending,
		Total:             decimal.Zero,
		PlacedAt:          time.Now(),
		Lines:             make([]OrderLine, 0, len(cartLines)),
	}

	for _, cl := range cartLines {
		line := OrderLine{
			BaseEntity: shared.NewBaseEntity(),
			OrderID:    order.ID,
			MenuItemID: cl.MenuItemID,
			Title:      cl.Title,
			Quantity:   cl.Quantity,
			UnitPrice:  cl.UnitPrice,
			LineTotal:  cl.LineTotal,
		}
		order.Lines = append(order.Lines, line)
		order.Total = order.Total.Add(cl.LineTotal)
	}

	return order, nil
}

// AssignCrew assigns a delivery crew member to the order
// Assigning crew to a pending order moves it to assigned.
func (o *Order) AssignCrew(crewID uuid.UUID) error {
	if crewID == uuid.Nil {
		return shared.NewDomainError("INVALID_CREW", "Delivery crew ID is required")
	}
	if o.Status == OrderStatusDelivered {
		return shared.NewDomainError("INVALID_STATE", "Cannot reassign a delivered order")
	}

	o.DeliveryCrewID = &crewID
	if o.Status == OrderStatusPending {
		o.Status = OrderStatusAssigned
	}
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// UpdateStatus transitions the order to a new status
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+target.String())
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", "Cannot transition order from "+o.Status.String()+" to "+target.String())
	}
	if target != OrderStatusPending && o.DeliveryCrewID == nil {
		return shared.NewDomainError("INVALID_STATE", "Order has no delivery crew assigned")
	}

	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// IsDelivered returns true if the order reached its terminal state
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}
