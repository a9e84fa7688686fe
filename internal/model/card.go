package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card represents a stored payment card.
type Card struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	CardNumber string          `json:"card_number" gorm:"size:19;not null"`
	CardExpiry string          `json:"card_expiry" gorm:"size:5;not null"` // MM/YY format
	Cardholder string          `json:"cardholder" gorm:"size:255;not null"`
	Balance    decimal.Decimal `json:"balance" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
