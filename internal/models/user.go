package models

import "gorm.io/gorm"

// User represents a registered account. Every user owns exactly one cart,
// created at registration time.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Password   string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Cart       *Cart  `json:"cart,omitempty" gorm:"foreignKey:UserID"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
