package services

import (
	"context"
	"fmt"
	"time"

	"weddinginvitation/internal/domain"
)

type giftService struct {
	giftRepo       domain.GiftRepository
	ownership      domain.OwnershipRepository
	contextTimeout time.Duration
}

func NewGiftService(giftRepo domain.GiftRepository, ownership domain.OwnershipRepository, timeout time.Duration) domain.GiftService {
	return &giftService{giftRepo: giftRepo, ownership: ownership, contextTimeout: timeout}
}

func (s *giftService) Create(ctx context.Context, userID string, gift *domain.Gift) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireWedding(ctx, s.ownership, gift.WeddingID, userID); err != nil {
		return err
	}
	if err := s.giftRepo.Create(ctx, gift); err != nil {
		return fmt.Errorf("create gift: %w", err)
	}
	return nil
}

func (s *giftService) ListForUser(ctx context.Context, userID string) ([]*domain.Gift, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	gifts, err := s.giftRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list gifts: %w", err)
	}
	if gifts == nil {
		gifts = []*domain.Gift{}
	}
	return gifts, nil
}
