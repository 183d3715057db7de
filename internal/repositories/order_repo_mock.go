package repositories

import (
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.UserOrder
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.UserOrder),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.UserOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	stored := *order
	stored.Items = make([]models.OrderItem, len(order.Items))
	copy(stored.Items, order.Items)
	r.orders[order.ID] = stored
	return nil
}

// GetByUserID returns all orders placed by the given user.
func (r *MockOrderRepository) GetByUserID(userID string) ([]models.UserOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.UserOrder, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}
