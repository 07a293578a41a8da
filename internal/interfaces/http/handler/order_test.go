package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	orderingapp "github.com/bistro/backend/internal/application/ordering"
	"github.com/bistro/backend/internal/domain/identity"
	"github.com/bistro/backend/internal/domain/ordering"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository implements ordering.OrderRepository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByDeliveryCrew(ctx context.Context, crewID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, crewID, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateFromCart(ctx context.Context, customerID uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupOrderHandler(orderRepo *MockOrderRepository, userRepo *MockUserRepository) *OrderHandler {
	return NewOrderHandler(orderingapp.NewOrderService(orderRepo, userRepo, zap.NewNop()))
}

func orderFixture(t *testing.T, customerID uuid.UUID) *ordering.Order {
	t.Helper()
	itemA := menuItemFixture("Margherita", "10.00")
	itemB := menuItemFixture("Tiramisu", "5.00")
	lineA, err := ordering.NewCartLine(customerID, itemA.ID, itemA.Title, 2, itemA.Price)
	require.NoError(t, err)
	lineB, err := ordering.NewCartLine(customerID, itemB.ID, itemB.Title, 1, itemB.Price)
	require.NoError(t, err)
	order, err := ordering.NewOrderFromCart(customerID, []ordering.CartLine{*lineA, *lineB})
	require.NoError(t, err)
	return order
}

func TestOrderHandler_Place_Success(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	customerID := uuid.New()
	order := orderFixture(t, customerID)
	orderRepo.On("CreateFromCart", mock.Anything, customerID).Return(order, nil)

	router := setupTestRouter(customerID)
	router.POST("/orders", handler.Place)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "25", body["data"].(map[string]any)["total"])
	orderRepo.AssertExpectations(t)
}

func TestOrderHandler_Place_EmptyCart(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	customerID := uuid.New()
	orderRepo.On("CreateFromCart", mock.Anything, customerID).Return(nil, shared.ErrEmptyCart)

	router := setupTestRouter(customerID)
	router.POST("/orders", handler.Place)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "EMPTY_CART", body["error"].(map[string]any)["code"])
}

func TestOrderHandler_List_CustomerSeesOwnOrders(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	customerID := uuid.New()
	order := orderFixture(t, customerID)
	orderRepo.On("FindByCustomer", mock.Anything, customerID, mock.AnythingOfType("shared.Filter")).
		Return([]ordering.Order{*order}, nil)

	router := setupTestRouter(customerID)
	router.GET("/orders", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	orderRepo.AssertExpectations(t)
}

func TestOrderHandler_List_ManagerSeesAllOrders(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	order := orderFixture(t, uuid.New())
	orderRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return([]ordering.Order{*order}, nil)

	router := setupTestRouter(uuid.New(), "manager")
	router.GET("/orders", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/orders?status=pending", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	orderRepo.AssertExpectations(t)
}

func TestOrderHandler_List_CrewSeesAssignedOrders(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	crewID := uuid.New()
	orderRepo.On("FindByDeliveryCrew", mock.Anything, crewID, mock.AnythingOfType("shared.Filter")).
		Return([]ordering.Order{}, nil)

	router := setupTestRouter(crewID, "delivery_crew")
	router.GET("/orders", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	orderRepo.AssertExpectations(t)
}

func TestOrderHandler_List_InvalidStatus(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	router := setupTestRouter(uuid.New(), "manager")
	router.GET("/orders", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/orders?status=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_GetByID_CustomerCannotSeeOthersOrder(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	order := orderFixture(t, uuid.New())
	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	router := setupTestRouter(uuid.New())
	router.GET("/orders/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderHandler_Update_ManagerAssignsCrew(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	order := orderFixture(t, uuid.New())
	crew := userFixture(t, "bob")
	crew.GrantRole(identity.RoleDeliveryCrew)

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	userRepo.On("FindByID", mock.Anything, crew.ID).Return(crew, nil)
	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*ordering.Order")).Return(nil)

	router := setupTestRouter(uuid.New(), "manager")
	router.PUT("/orders/:id", handler.Update)

	body, _ := json.Marshal(orderingapp.UpdateOrderRequest{DeliveryCrewID: &crew.ID})
	req := httptest.NewRequest(http.MethodPut, "/orders/"+order.ID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body2 := decodeResponse(t, w)
	assert.Equal(t, "assigned", body2["data"].(map[string]any)["status"])
	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestOrderHandler_Update_CrewMarksDelivered(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	crewID := uuid.New()
	order := orderFixture(t, uuid.New())
	require.NoError(t, order.AssignCrew(crewID))

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*ordering.Order")).Return(nil)

	router := setupTestRouter(crewID, "delivery_crew")
	router.PATCH("/orders/:id", handler.Update)

	status := "delivered"
	body, _ := json.Marshal(orderingapp.UpdateOrderRequest{Status: &status})
	req := httptest.NewRequest(http.MethodPatch, "/orders/"+order.ID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	orderRepo.AssertExpectations(t)
}

func TestOrderHandler_Update_CustomerForbidden(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	customerID := uuid.New()
	order := orderFixture(t, customerID)
	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	router := setupTestRouter(customerID)
	router.PATCH("/orders/:id", handler.Update)

	status := "delivered"
	body, _ := json.Marshal(orderingapp.UpdateOrderRequest{Status: &status})
	req := httptest.NewRequest(http.MethodPatch, "/orders/"+order.ID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderHandler_Delete_Success(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	handler := setupOrderHandler(orderRepo, userRepo)

	order := orderFixture(t, uuid.New())
	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	orderRepo.On("Delete", mock.Anything, order.ID).Return(nil)

	router := setupTestRouter(uuid.New(), "manager")
	router.DELETE("/orders/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+order.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	orderRepo.AssertExpectations(t)
}
