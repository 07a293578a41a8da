package access

import (
	"github.com/bistro/backend/internal/domain/identity"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Actor is the authenticated principal an authorization decision is
// made for
type Actor struct {
	UserID uuid.UUID
	Roles  []identity.StaffRole
}

// HasRole returns true if the actor holds the given staff role
func (a Actor) HasRole(role identity.StaffRole) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsManager returns true if the actor holds the manager role
func (a Actor) IsManager() bool {
	return a.HasRole(identity.RoleManager)
}

// IsDeliveryCrew returns true if the actor holds the delivery crew role
func (a Actor) IsDeliveryCrew() bool {
	return a.HasRole(identity.RoleDeliveryCrew)
}

// IsCustomer returns true if the actor holds no staff role
func (a Actor) IsCustomer() bool {
	return len(a.Roles) == 0
}

// Action identifies an operation subject to authorization
type Action string

const (
	ActionBrowseMenu    Action = "menu.browse"
	ActionManageMenu    Action = "menu.manage"
	ActionManageGroups  Action = "groups.manage"
	ActionUseCart       Action = "cart.use"
	ActionPlaceOrder    Action = "order.place"
	ActionListAllOrders Action = "order.list_all"
	ActionFulfillOrder  Action = "order.fulfill"
	ActionDeleteOrder   Action = "order.delete"
)

// Authorize decides whether an actor may perform an action
// It is a pure function of the actor's roles.
func Authorize(actor Actor, action Action) error {
	switch action {
	case ActionBrowseMenu:
		return nil
	case ActionManageMenu, ActionManageGroups, ActionListAllOrders, ActionDeleteOrder:
		if actor.IsManager() {
			return nil
		}
		return shared.ErrForbidden
	case ActionUseCart, ActionPlaceOrder:
		// Every authenticated user has a cart and may order from it,
		// staff included.
		return nil
	case ActionFulfillOrder:
		if actor.IsManager() || actor.IsDeliveryCrew() {
			return nil
		}
		return shared.ErrForbidden
	}
	return shared.ErrForbidden
}

// CanViewOrder decides whether an actor may see a specific order
// Managers see every order, delivery crew see orders assigned to
// them, and customers see their own orders.
func CanViewOrder(actor Actor, customerID uuid.UUID, crewID *uuid.UUID) bool {
	if actor.IsManager() {
		return true
	}
	if actor.IsDeliveryCrew() {
		return crewID != nil && *crewID == actor.UserID
	}
	return customerID == actor.UserID
}
