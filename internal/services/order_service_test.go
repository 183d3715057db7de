package services_test

import (
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventPublisher is a testify mock of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

type orderFixture struct {
	orders    *services.OrderService
	carts     *services.CartService
	itemRepo  *repositories.MockItemRepository
	cartRepo  *repositories.MockCartRepository
	userRepo  *repositories.MockUserRepository
	publisher *MockEventPublisher
	item      *models.Item
}

// newOrderFixture wires order and cart services against in-memory
// repositories with one user and one catalog item.
func newOrderFixture(t *testing.T, clearCart bool) *orderFixture {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	itemRepo := repositories.NewMockItemRepository()
	cartRepo := repositories.NewMockCartRepository()
	orderRepo := repositories.NewMockOrderRepository()
	publisher := new(MockEventPublisher)

	user := &models.User{Username: "u1", Password: "irrelevant"}
	require.NoError(t, userRepo.Create(user))
	require.NoError(t, cartRepo.Create(&models.Cart{UserID: user.ID}))

	item := &models.Item{Name: "Widget", Price: 10.00}
	require.NoError(t, itemRepo.Create(item))

	return &orderFixture{
		orders:    services.NewOrderService(orderRepo, userRepo, cartRepo, publisher, clearCart),
		carts:     services.NewCartService(userRepo, itemRepo, cartRepo),
		itemRepo:  itemRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		publisher: publisher,
		item:      item,
	}
}

func TestOrderService_Submit(t *testing.T) {
	f := newOrderFixture(t, true)
	f.publisher.On("Publish", "order", "order.submitted", mock.Anything).Return(nil).Once()

	_, err := f.carts.AddToCart("u1", f.item.ID, 2)
	require.NoError(t, err)

	order, err := f.orders.Submit("u1")
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 20.00, order.Total)
	assert.Equal(t, "Widget", order.Items[0].Name)
	f.publisher.AssertExpectations(t)
}

func TestOrderService_SubmitUnknownUser(t *testing.T) {
	f := newOrderFixture(t, true)

	_, err := f.orders.Submit("ghost")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_SnapshotSurvivesCartMutation(t *testing.T) {
	f := newOrderFixture(t, false)
	f.publisher.On("Publish", "order", "order.submitted", mock.Anything).Return(nil)

	_, err := f.carts.AddToCart("u1", f.item.ID, 2)
	require.NoError(t, err)

	order, err := f.orders.Submit("u1")
	require.NoError(t, err)
	require.Equal(t, 20.00, order.Total)

	// Mutating the cart afterwards must not touch the placed order.
	_, err = f.carts.RemoveFromCart("u1", f.item.ID, 2)
	require.NoError(t, err)

	history, err := f.orders.History("u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 20.00, history[0].Total)
	assert.Len(t, history[0].Items, 2)
}

func TestOrderService_ClearCartAfterSubmit(t *testing.T) {
	f := newOrderFixture(t, true)
	f.publisher.On("Publish", "order", "order.submitted", mock.Anything).Return(nil)

	_, err := f.carts.AddToCart("u1", f.item.ID, 2)
	require.NoError(t, err)

	_, err = f.orders.Submit("u1")
	require.NoError(t, err)

	user, err := f.userRepo.GetByUsername("u1")
	require.NoError(t, err)
	cart, err := f.cartRepo.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Entries)
	assert.Equal(t, 0.00, cart.Total)
}

func TestOrderService_UnclearedCartAllowsResubmission(t *testing.T) {
	f := newOrderFixture(t, false)
	f.publisher.On("Publish", "order", "order.submitted", mock.Anything).Return(nil)

	_, err := f.carts.AddToCart("u1", f.item.ID, 1)
	require.NoError(t, err)

	// With clearing disabled the same cart contents produce a second order.
	_, err = f.orders.Submit("u1")
	require.NoError(t, err)
	_, err = f.orders.Submit("u1")
	require.NoError(t, err)

	history, err := f.orders.History("u1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
	for _, order := range history {
		assert.Equal(t, 10.00, order.Total)
	}
}

func TestOrderService_History(t *testing.T) {
	f := newOrderFixture(t, true)

	// A user with no orders gets an empty list, not an error.
	history, err := f.orders.History("u1")
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = f.orders.History("ghost")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestOrderService_PublishFailureDoesNotFailSubmit(t *testing.T) {
	f := newOrderFixture(t, true)
	f.publisher.On("Publish", "order", "order.submitted", mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	_, err := f.carts.AddToCart("u1", f.item.ID, 1)
	require.NoError(t, err)

	order, err := f.orders.Submit("u1")
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	f.publisher.AssertExpectations(t)
}
