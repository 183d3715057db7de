package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart data access. Update replaces
// the cart's entries and total wholesale; entries are never patched in place.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByUserID(userID string) (*models.Cart, error)
	Update(cart *models.Cart) error
}
