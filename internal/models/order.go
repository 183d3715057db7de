package models

import "time"

// OrderItem is a snapshot of a single cart entry at submission time. Name,
// description and price are copied, not referenced, so later catalog edits
// never alter a placed order.
type OrderItem struct {
	EntryID     uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID     string  `json:"-" gorm:"index;type:varchar(36)"`
	ItemID      string  `json:"item_id" gorm:"type:varchar(36)"`
	Name        string  `json:"name" gorm:"type:varchar(100)"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // Price at the time of order
}

// UserOrder is an immutable snapshot of a user's cart taken when the order
// was submitted. It is created once and never mutated or deleted.
type UserOrder struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

// SnapshotCart builds a UserOrder by copying the cart's entries and total.
// The returned order shares no mutable state with the cart.
func SnapshotCart(user *User, cart *Cart) *UserOrder {
	items := make([]OrderItem, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		items = append(items, OrderItem{
			ItemID:      e.Item.ID,
			Name:        e.Item.Name,
			Description: e.Item.Description,
			Price:       e.Item.Price,
		})
	}
	return &UserOrder{
		UserID: user.ID,
		Items:  items,
		Total:  cart.Total,
	}
}
