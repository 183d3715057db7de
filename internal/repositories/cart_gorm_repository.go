package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create creates a new cart in the database.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// GetByUserID retrieves a user's cart with its entries and their items.
func (r *GORMCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Entries.Item").First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Update replaces the cart's entries and total in a single transaction. The
// old entry rows are deleted and the current ones re-inserted, so the stored
// multiset always matches the in-memory cart exactly.
func (r *GORMCartRepository) Update(cart *models.Cart) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartEntry{}).Error; err != nil {
			return err
		}
		for i := range cart.Entries {
			cart.Entries[i].EntryID = 0
			cart.Entries[i].CartID = cart.ID
		}
		if len(cart.Entries) > 0 {
			if err := tx.Omit("Item").Create(&cart.Entries).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("total", cart.Total).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update cart %s: %w", cart.ID, err)
	}
	return nil
}
