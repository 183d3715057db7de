package repositories

import (
	"storefront/internal/models"
)

// ItemRepository defines the interface for catalog data access.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByID(id string) (*models.Item, error)
	GetByName(name string) ([]models.Item, error)
	Create(item *models.Item) error
}
