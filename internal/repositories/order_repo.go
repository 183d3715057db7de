package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// append-only: there is no update or delete.
type OrderRepository interface {
	Create(order *models.UserOrder) error
	GetByUserID(userID string) ([]models.UserOrder, error)
}
