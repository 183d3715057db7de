package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic for cart mutation. Every mutation ends
// with a full re-sum of the cart total; a previously stored total is never
// trusted.
type CartService struct {
	userRepo repositories.UserRepository
	itemRepo repositories.ItemRepository
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(userRepo repositories.UserRepository, itemRepo repositories.ItemRepository, cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		userRepo: userRepo,
		itemRepo: itemRepo,
		cartRepo: cartRepo,
	}
}

// AddToCart appends quantity copies of the item to the user's cart,
// recomputes the total and persists the cart.
func (s *CartService) AddToCart(username, itemID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}

	user, cart, err := s.lookupUserCart(username)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}

	for i := 0; i < quantity; i++ {
		cart.Entries = append(cart.Entries, models.CartEntry{
			CartID: cart.ID,
			ItemID: item.ID,
			Item:   *item,
		})
	}
	cart.RecomputeTotal()

	if err := s.cartRepo.Update(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", user.Username, err)
	}
	return cart, nil
}

// RemoveFromCart removes up to quantity matching item references from the
// user's cart, recomputes the total and persists the cart. Removing more
// copies than the cart holds removes what is there and succeeds.
func (s *CartService) RemoveFromCart(username, itemID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrInvalidInput)
	}

	user, cart, err := s.lookupUserCart(username)
	if err != nil {
		return nil, err
	}
	// The item must exist in the catalog even when the cart holds no copy.
	if _, err := s.itemRepo.GetByID(itemID); err != nil {
		return nil, err
	}

	remaining := quantity
	kept := cart.Entries[:0]
	for _, entry := range cart.Entries {
		if remaining > 0 && entry.ItemID == itemID {
			remaining--
			continue
		}
		kept = append(kept, entry)
	}
	cart.Entries = kept
	cart.RecomputeTotal()

	if err := s.cartRepo.Update(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", user.Username, err)
	}
	return cart, nil
}

func (s *CartService) lookupUserCart(username string) (*models.User, *models.Cart, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	cart, err := s.cartRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, cart, nil
}
