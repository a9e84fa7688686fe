package repository

import (
	"context"

	"gorm.io/gorm"

	"agenda/internal/model"
)

// ContactRepository defines contact persistence operations. Update and Delete
// report the number of rows affected so callers can distinguish a missing row
// from a transport failure.
type ContactRepository interface {
	List(ctx context.Context) ([]model.Contact, error)
	FindByID(ctx context.Context, id uint) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, id uint, contact *model.Contact) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// Update writes the full field set, overwriting every mutable column.
func (r *contactRepository) Update(ctx context.Context, id uint, contact *model.Contact) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"first_name": contact.FirstName,
			"last_name":  contact.LastName,
			"email":      contact.Email,
			"phone":      contact.Phone,
		})
	return res.RowsAffected, res.Error
}

func (r *contactRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Contact{}, id)
	return res.RowsAffected, res.Error
}
