package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart // keyed by user ID
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// Create adds a new cart.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	r.carts[cart.UserID] = cloneCart(cart)
	return nil
}

// GetByUserID returns the cart owned by the given user.
func (r *MockCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	copied := cloneCart(&cart)
	return &copied, nil
}

// Update replaces a stored cart.
func (r *MockCartRepository) Update(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.UserID]; !ok {
		return fmt.Errorf("cart for user %s: %w", cart.UserID, ErrNotFound)
	}
	r.carts[cart.UserID] = cloneCart(cart)
	return nil
}

// cloneCart copies the cart and its entry slice so callers never share
// backing arrays with the store.
func cloneCart(cart *models.Cart) models.Cart {
	copied := *cart
	copied.Entries = make([]models.CartEntry, len(cart.Entries))
	copy(copied.Entries, cart.Entries)
	return copied
}
