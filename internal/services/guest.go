package services

import (
	"context"
	"fmt"
	"time"

	"weddinginvitation/internal/domain"
)

type guestService struct {
	guestRepo      domain.GuestRepository
	ownership      domain.OwnershipRepository
	contextTimeout time.Duration
}

func NewGuestService(guestRepo domain.GuestRepository, ownership domain.OwnershipRepository, timeout time.Duration) domain.GuestService {
	return &guestService{guestRepo: guestRepo, ownership: ownership, contextTimeout: timeout}
}

func (s *guestService) Create(ctx context.Context, userID string, guest *domain.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireInvitation(ctx, s.ownership, guest.InvitationID, userID); err != nil {
		return err
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return fmt.Errorf("create guest: %w", err)
	}
	return nil
}

func (s *guestService) ListForUser(ctx context.Context, userID string) ([]*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	guests, err := s.guestRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}
	return guests, nil
}
