package models

import "gorm.io/gorm"

// CartEntry is one item reference inside a cart. Adding an item with
// quantity N produces N entries, so the cart holds a multiset.
type CartEntry struct {
	EntryID uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	CartID  string `json:"-" gorm:"index;type:varchar(36)"`
	ItemID  string `json:"item_id" gorm:"type:varchar(36)"`
	Item    Item   `json:"item" gorm:"foreignKey:ItemID"`
}

// Cart is the per-user mutable collection of item references. Total is
// derived: it is re-summed from entry prices on every mutation and never
// trusted across mutations.
type Cart struct {
	ID         string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string      `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Entries    []CartEntry `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Total      float64     `json:"total"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// RecomputeTotal re-sums the cart total from current entry prices.
func (c *Cart) RecomputeTotal() {
	var total float64
	for _, e := range c.Entries {
		total += e.Item.Price
	}
	c.Total = total
}
