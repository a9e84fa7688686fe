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

const cardCacheTTL = 5 * time.Minute

// CardService exposes card CRUD operations.
type CardService interface {
	List(ctx context.Context) ([]model.Card, error)
	Get(ctx context.Context, id uint) (*model.Card, error)
	Create(ctx context.Context, card *model.Card) error
	Update(ctx context.Context, id uint, card *model.Card) error
	Delete(ctx context.Context, id uint) error
}

type cardService struct {
	repo  repository.CardRepository
	cache *cache.Client
}

// NewCardService builds a CardService with repository and cache.
func NewCardService(repo repository.CardRepository, cache *cache.Client) CardService {
	return &cardService{repo: repo, cache: cache}
}

func (s *cardService) cacheKey(id uint) string {
	return fmt.Sprintf("card:%d", id)
}

func (s *cardService) List(ctx context.Context) ([]model.Card, error) {
	return s.repo.List(ctx)
}

func (s *cardService) Get(ctx context.Context, id uint) (*model.Card, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Card
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(card); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, cardCacheTTL)
	}
	return card, nil
}

func (s *cardService) Create(ctx context.Context, card *model.Card) error {
	return s.repo.Create(ctx, card)
}

func (s *cardService) Update(ctx context.Context, id uint, card *model.Card) error {
	affected, err := s.repo.Update(ctx, id, card)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *cardService) Delete(ctx context.Context, id uint) error {
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
