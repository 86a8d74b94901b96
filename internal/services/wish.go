package services

import (
	"context"
	"fmt"
	"time"

	"weddinginvitation/internal/domain"
)

type wishService struct {
	wishRepo       domain.WishRepository
	contextTimeout time.Duration
}

func NewWishService(wishRepo domain.WishRepository, timeout time.Duration) domain.WishService {
	return &wishService{wishRepo: wishRepo, contextTimeout: timeout}
}

func (s *wishService) Submit(ctx context.Context, wish *domain.Wish) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.wishRepo.Create(ctx, wish); err != nil {
		return fmt.Errorf("create wish: %w", err)
	}
	return nil
}

func (s *wishService) ListForUser(ctx context.Context, userID string) ([]*domain.Wish, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	wishes, err := s.wishRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishes: %w", err)
	}
	if wishes == nil {
		wishes = []*domain.Wish{}
	}
	return wishes, nil
}
