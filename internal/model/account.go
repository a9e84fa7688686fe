package model

import "time"

// Account represents a registered user. Accounts are created by signup only
// and are never updated or deleted through the API.
type Account struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:255;not null"`
	LastName     string    `json:"last_name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Birthday     string    `json:"birthday" gorm:"size:10;not null"` // YYYY-MM-DD
	PasswordHash string    `json:"-" gorm:"size:255;not null"`       // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
