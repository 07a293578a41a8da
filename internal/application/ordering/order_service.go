package ordering

import (
	"context"

	"github.com/bistro/backend/internal/domain/access"
	"github.com/bistro/backend/internal/domain/identity"
	"github.com/bistro/backend/internal/domain/ordering"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order placement and fulfillment
type OrderService struct {
	orderRepo ordering.OrderRepository
	userRepo  identity.UserRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.OrderRepository, userRepo identity.UserRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Place converts the customer's cart into an order
// The cart is consumed and cleared in the same transaction, so a
// concurrent checkout of the same cart produces exactly one order.
func (s *OrderService) Place(ctx context.Context, customerID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.CreateFromCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("total", order.Total.String()))

	return toOrderResponse(order), nil
}

// List returns the orders visible to the actor
// Managers see every order, delivery crew see orders assigned to
// them, and customers see their own orders.
func (s *OrderService) List(ctx context.Context, actor access.Actor, filter shared.Filter) ([]OrderResponse, error) {
	var (
		orders []ordering.Order
		err    error
	)

	switch {
	case actor.IsManager():
		orders, err = s.orderRepo.FindAll(ctx, filter)
	case actor.IsDeliveryCrew():
		orders, err = s.orderRepo.FindByDeliveryCrew(ctx, actor.UserID, filter)
	default:
		orders, err = s.orderRepo.FindByCustomer(ctx, actor.UserID, filter)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *toOrderResponse(&orders[i]))
	}
	return responses, nil
}

// Get returns a single order if the actor may see it
func (s *OrderService) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanViewOrder(actor, order.CustomerID, order.DeliveryCrewID) {
		return nil, shared.ErrForbidden
	}

	return toOrderResponse(order), nil
}

// Update applies a fulfillment change to an order
// Managers may assign delivery crew and change status. Delivery crew
// may only change the status of orders assigned to them.
func (s *OrderService) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.IsManager() {
		if err := s.applyManagerUpdate(ctx, order, req); err != nil {
			return nil, err
		}
	} else if actor.IsDeliveryCrew() {
		if order.DeliveryCrewID == nil || *order.DeliveryCrewID != actor.UserID {
			return nil, shared.ErrForbidden
		}
		if req.DeliveryCrewID != nil {
			return nil, shared.ErrForbidden
		}
		if req.Status == nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Status is required")
		}
		if err := order.UpdateStatus(ordering.OrderStatus(*req.Status)); err != nil {
			return nil, err
		}
	} else {
		return nil, shared.ErrForbidden
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order updated",
		zap.String("order_id", order.ID.String()),
		zap.String("status", order.Status.String()))

	return toOrderResponse(order), nil
}

// Delete removes an order
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

func (s *OrderService) applyManagerUpdate(ctx context.Context, order *ordering.Order, req UpdateOrderRequest) error {
	if req.DeliveryCrewID != nil {
		crew, err := s.userRepo.FindByID(ctx, *req.DeliveryCrewID)
		if err != nil {
			return shared.NewDomainError("INVALID_CREW", "Delivery crew member not found")
		}
		if !crew.IsDeliveryCrew() {
			return shared.NewDomainError("INVALID_CREW", "User is not a delivery crew member")
		}
		if err := order.AssignCrew(crew.ID); err != nil {
			return err
		}
	}

	if req.Status != nil {
		if err := order.UpdateStatus(ordering.OrderStatus(*req.Status)); err != nil {
			return err
		}
	}

	return nil
}
