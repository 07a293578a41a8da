package catalog

import (
	"context"
	"testing"

	"github.com/bistro/backend/internal/domain/catalog"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuItemRepository is a mock implementation of MenuItemRepository
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.MenuItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Save(ctx context.Context, item *catalog.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func menuItemFixture(t *testing.T) *catalog.MenuItem {
	item, err := catalog.NewMenuItem("Greek Salad", decimal.NewFromFloat(9.50), "Starters")
	require.NoError(t, err)
	return item
}

func TestMenuItemService_Create(t *testing.T) {
	t.Run("creates item", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.MenuItem")).Return(nil)

		resp, err := service.Create(context.Background(), CreateMenuItemRequest{
			Title:    "Greek Salad",
			Price:    decimal.NewFromFloat(9.50),
			Category: "Starters",
		})

		require.NoError(t, err)
		assert.Equal(t, "Greek Salad", resp.Title)
		assert.False(t, resp.Featured)
		repo.AssertExpectations(t)
	})

	t.Run("creates featured item", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.MenuItem")).Return(nil)

		featured := true
		resp, err := service.Create(context.Background(), CreateMenuItemRequest{
			Title:    "Lemon Dessert",
			Price:    decimal.NewFromFloat(5.00),
			Featured: &featured,
		})

		require.NoError(t, err)
		assert.True(t, resp.Featured)
	})

	t.Run("rejects invalid price", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)

		_, err := service.Create(context.Background(), CreateMenuItemRequest{
			Title: "Greek Salad",
			Price: decimal.Zero,
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestMenuItemService_GetByID(t *testing.T) {
	t.Run("returns item", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)
		item := menuItemFixture(t)

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

		resp, err := service.GetByID(context.Background(), item.ID)

		require.NoError(t, err)
		assert.Equal(t, item.ID, resp.ID)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestMenuItemService_List(t *testing.T) {
	repo := new(MockMenuItemRepository)
	service := NewMenuItemService(repo)
	item := menuItemFixture(t)

	filter := shared.DefaultFilter()
	repo.On("FindAll", mock.Anything, filter).Return([]catalog.MenuItem{*item}, nil)
	repo.On("Count", mock.Anything, filter).Return(int64(1), nil)

	page, err := service.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
}

func TestMenuItemService_Update(t *testing.T) {
	t.Run("updates price and featured flag", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)
		item := menuItemFixture(t)

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		repo.On("Save", mock.Anything, item).Return(nil)

		price := decimal.NewFromFloat(11.00)
		featured := true
		resp, err := service.Update(context.Background(), item.ID, UpdateMenuItemRequest{
			Price:    &price,
			Featured: &featured,
		})

		require.NoError(t, err)
		assert.True(t, resp.Price.Equal(price))
		assert.True(t, resp.Featured)
		assert.Equal(t, "Greek Salad", resp.Title)
	})

	t.Run("rejects invalid title", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)
		item := menuItemFixture(t)

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

		empty := "  "
		_, err := service.Update(context.Background(), item.ID, UpdateMenuItemRequest{Title: &empty})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestMenuItemService_Delete(t *testing.T) {
	t.Run("deletes existing item", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)
		item := menuItemFixture(t)

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		repo.On("Delete", mock.Anything, item.ID).Return(nil)

		err := service.Delete(context.Background(), item.ID)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockMenuItemRepository)
		service := NewMenuItemService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
