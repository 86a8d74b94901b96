package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddinginvitation/internal/domain"
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	ownership      domain.OwnershipRepository
	cache          domain.InvitationCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewInvitationService creates an InvitationService. cache may be nil to read slugs straight from the repository.
func NewInvitationService(
	invitationRepo domain.InvitationRepository,
	ownership domain.OwnershipRepository,
	cache domain.InvitationCache,
	logger *slog.Logger,
	timeout time.Duration,
) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		ownership:      ownership,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func normalizeSlug(slug string) string {
	return strings.TrimSpace(strings.ToLower(slug))
}

func (s *invitationService) Create(ctx context.Context, userID string, invitation *domain.Invitation) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireWedding(ctx, s.ownership, invitation.WeddingID, userID); err != nil {
		return err
	}
	invitation.Slug = normalizeSlug(invitation.Slug)
	if invitation.Status == "" {
		invitation.Status = domain.InvitationStatusDraft
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return fmt.Errorf("create invitation: %w", err)
	}
	return nil
}

func (s *invitationService) ListForUser(ctx context.Context, userID string) ([]*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invitations, err := s.invitationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	if invitations == nil {
		invitations = []*domain.Invitation{}
	}
	return invitations, nil
}

// GetBySlug is the public lookup. Cache failures are logged and never fail the request.
func (s *invitationService) GetBySlug(ctx context.Context, slug string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	slug = normalizeSlug(slug)
	if s.cache != nil {
		invitation, err := s.cache.Get(ctx, slug)
		if err == nil {
			return invitation, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "invitation cache read failed", "slug", slug, "err", err)
		}
	}

	invitation, err := s.invitationRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation by slug: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, invitation); err != nil {
			s.logger.WarnContext(ctx, "invitation cache write failed", "slug", slug, "err", err)
		}
	}
	return invitation, nil
}
