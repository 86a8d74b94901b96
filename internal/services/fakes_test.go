package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"weddinginvitation/internal/domain"
)

const testTimeout = 5 * time.Second

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	err error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	issued []domain.Identity
	expiry time.Duration
	err    error
}

func (f *fakeTokenIssuer) Issue(identity domain.Identity, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued = append(f.issued, identity)
	f.expiry = expiry
	return "token-" + identity.UserID, nil
}

// fakeEmailService records sent emails in memory.
type fakeEmailService struct {
	welcome []*domain.WelcomeMessageEmailData
	rsvps   []*domain.RSVPReceivedEmailData
	err     error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.welcome = append(f.welcome, data)
	return nil
}

func (f *fakeEmailService) SendRSVPReceived(ctx context.Context, data *domain.RSVPReceivedEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.rsvps = append(f.rsvps, data)
	return nil
}

// fakeInvitationCache is a map-backed InvitationCache that can be made to fail.
type fakeInvitationCache struct {
	bySlug map[string]*domain.Invitation
	getErr error
	setErr error
	sets   int
}

func newFakeInvitationCache() *fakeInvitationCache {
	return &fakeInvitationCache{bySlug: make(map[string]*domain.Invitation)}
}

func (f *fakeInvitationCache) Get(ctx context.Context, slug string) (*domain.Invitation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if inv, ok := f.bySlug[slug]; ok {
		return inv, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInvitationCache) Set(ctx context.Context, inv *domain.Invitation) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.bySlug[inv.Slug] = inv
	return nil
}

// failingOwnership returns err from every call.
type failingOwnership struct {
	err error
}

func (f failingOwnership) WeddingOwnedBy(ctx context.Context, weddingID, userID string) (bool, error) {
	return false, f.err
}

func (f failingOwnership) InvitationOwnedBy(ctx context.Context, invitationID, userID string) (bool, error) {
	return false, f.err
}

func (f failingOwnership) GuestOwner(ctx context.Context, guestID string) (*domain.User, error) {
	return nil, f.err
}
