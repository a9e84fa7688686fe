package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"agenda/internal/cache"
	apperrors "agenda/internal/errors"
	"agenda/internal/model"
	"agenda/internal/repository"
)

const contactCacheTTL = 5 * time.Minute

// ContactService exposes contact CRUD operations.
type ContactService interface {
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id uint) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, id uint, contact *model.Contact) error
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	repo  repository.ContactRepository
	cache *cache.Client
}

// NewContactService builds a ContactService with repository and cache.
func NewContactService(repo repository.ContactRepository, cache *cache.Client) ContactService {
	return &contactService{repo: repo, cache: cache}
}

func (s *contactService) cacheKey(id uint) string {
	return fmt.Sprintf("contact:%d", id)
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id uint) (*model.Contact, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Contact
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(contact); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, contactCacheTTL)
	}
	return contact, nil
}

func (s *contactService) Create(ctx context.Context, contact *model.Contact) error {
	return s.repo.Create(ctx, contact)
}

// Update overwrites all mutable fields. Zero rows affected means the row does
// not exist (or already held the same values); both map to not found.
func (s *contactService) Update(ctx context.Context, id uint, contact *model.Contact) error {
	affected, err := s.repo.Update(ctx, id, contact)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
