package services

import (
	"context"
	"fmt"
	"time"

	"weddinginvitation/internal/domain"
)

type weddingService struct {
	weddingRepo    domain.WeddingRepository
	contextTimeout time.Duration
}

func NewWeddingService(weddingRepo domain.WeddingRepository, timeout time.Duration) domain.WeddingService {
	return &weddingService{weddingRepo: weddingRepo, contextTimeout: timeout}
}

// Create inserts a wedding for wedding.UserID, which the caller sets from the authenticated identity.
func (s *weddingService) Create(ctx context.Context, wedding *domain.Wedding) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if wedding.UserID == "" {
		return fmt.Errorf("wedding owner is required")
	}
	if err := s.weddingRepo.Create(ctx, wedding); err != nil {
		return fmt.Errorf("create wedding: %w", err)
	}
	return nil
}

func (s *weddingService) ListForUser(ctx context.Context, userID string) ([]*domain.Wedding, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	weddings, err := s.weddingRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list weddings: %w", err)
	}
	if weddings == nil {
		weddings = []*domain.Wedding{}
	}
	return weddings, nil
}
