package services

import (
	"fmt"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ItemService handles business logic for the item catalog.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// GetAllItems retrieves all catalog items. An empty catalog is not an error.
func (s *ItemService) GetAllItems() ([]models.Item, error) {
	return s.repo.GetAll()
}

// GetItemByID retrieves a single item by its ID.
func (s *ItemService) GetItemByID(id string) (*models.Item, error) {
	return s.repo.GetByID(id)
}

// GetItemsByName retrieves all items whose name exactly matches. An empty
// result is reported as not found.
func (s *ItemService) GetItemsByName(name string) ([]models.Item, error) {
	items, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("item named %q: %w", name, repositories.ErrNotFound)
	}
	return items, nil
}

// CreateItem validates and persists a new catalog item. The name must be
// present; the price must not be negative.
func (s *ItemService) CreateItem(item *models.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("item name is required: %w", ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf("item price must not be negative: %w", ErrInvalidInput)
	}
	return s.repo.Create(item)
}
