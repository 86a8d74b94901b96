package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weddinginvitation/internal/domain"
)

type rsvpService struct {
	rsvpRepo       domain.RSVPRepository
	ownership      domain.OwnershipRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRSVPService creates an RSVPService. emailService may be nil to skip owner notifications.
func NewRSVPService(
	rsvpRepo domain.RSVPRepository,
	ownership domain.OwnershipRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RSVPService {
	return &rsvpService{
		rsvpRepo:       rsvpRepo,
		ownership:      ownership,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Submit records a public reply. The guest id is trusted; a missing guest surfaces as ErrParentNotFound.
func (s *rsvpService) Submit(ctx context.Context, rsvp *domain.RSVP) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		return fmt.Errorf("create rsvp: %w", err)
	}
	s.notifyOwner(ctx, rsvp)
	return nil
}

func (s *rsvpService) notifyOwner(ctx context.Context, rsvp *domain.RSVP) {
	if s.emailService == nil {
		return
	}
	owner, err := s.ownership.GuestOwner(ctx, rsvp.GuestID)
	if err != nil {
		s.logger.WarnContext(ctx, "rsvp owner lookup failed", "guest_id", rsvp.GuestID, "err", err)
		return
	}
	data := &domain.RSVPReceivedEmailData{
		Email:      owner.Email,
		OwnerName:  owner.Name,
		Attendance: rsvp.Attendance,
		TotalGuest: rsvp.TotalGuest,
		Message:    rsvp.Message,
	}
	if err := s.emailService.SendRSVPReceived(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "rsvp notification not sent", "rsvp_id", rsvp.ID, "err", err)
	}
}

func (s *rsvpService) ListForUser(ctx context.Context, userID string) ([]*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rsvps, err := s.rsvpRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	return rsvps, nil
}
