package repository

import (
	"context"

	"gorm.io/gorm"

	"agenda/internal/model"
)

// CardRepository defines card persistence operations.
type CardRepository interface {
	List(ctx context.Context) ([]model.Card, error)
	FindByID(ctx context.Context, id uint) (*model.Card, error)
	Create(ctx context.Context, card *model.Card) error
	Update(ctx context.Context, id uint, card *model.Card) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) List(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.WithContext(ctx).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepository) FindByID(ctx context.Context, id uint) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// Update writes the full field set, overwriting every mutable column.
func (r *cardRepository) Update(ctx context.Context, id uint, card *model.Card) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"card_number": card.CardNumber,
			"card_expiry": card.CardExpiry,
			"cardholder":  card.Cardholder,
			"balance":     card.Balance,
		})
	return res.RowsAffected, res.Error
}

func (r *cardRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Card{}, id)
	return res.RowsAffected, res.Error
}
