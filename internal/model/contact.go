package model

import "time"

// Contact represents an address-book entry. The identifier is assigned by
// the database on insert and never changes afterwards.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"size:255;not null"`
	LastName  string    `json:"last_name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Phone     string    `json:"phone" gorm:"size:32;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
