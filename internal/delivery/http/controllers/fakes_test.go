package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/delivery/http/middleware"
	"weddinginvitation/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testUserID    = "11111111-1111-1111-1111-111111111111"
	testWeddingID = "22222222-2222-2222-2222-222222222222"
	testGuestID   = "33333333-3333-3333-3333-333333333333"
)

// newRequest builds a JSON request, authenticated as userID when it is not empty.
func newRequest(method, target, body, userID string) *http.Request {
	req := httptest.NewRequest(method, "http://test"+target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UserID: userID, Role: domain.RoleUser}))
	}
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIError {
	t.Helper()
	var body helpers.APIError
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	user        *domain.User
	registerErr error
	token       string
	loginErr    error
	lastRole    string
}

func (f *fakeAuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	f.lastRole = role
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.user, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

// fakeWeddingService implements domain.WeddingService for handler tests.
type fakeWeddingService struct {
	created *domain.Wedding
	list    []*domain.Wedding
	err     error
}

func (f *fakeWeddingService) Create(ctx context.Context, w *domain.Wedding) error {
	if f.err != nil {
		return f.err
	}
	w.ID = testWeddingID
	f.created = w
	return nil
}

func (f *fakeWeddingService) ListForUser(ctx context.Context, userID string) ([]*domain.Wedding, error) {
	return f.list, f.err
}

// fakeInvitationService implements domain.InvitationService for handler tests.
type fakeInvitationService struct {
	bySlug     map[string]*domain.Invitation
	createErr  error
	created    *domain.Invitation
	createdFor string
	err        error
}

func (f *fakeInvitationService) Create(ctx context.Context, userID string, inv *domain.Invitation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created, f.createdFor = inv, userID
	return nil
}

func (f *fakeInvitationService) ListForUser(ctx context.Context, userID string) ([]*domain.Invitation, error) {
	return []*domain.Invitation{}, f.err
}

func (f *fakeInvitationService) GetBySlug(ctx context.Context, slug string) (*domain.Invitation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if inv, ok := f.bySlug[slug]; ok {
		return inv, nil
	}
	return nil, domain.ErrNotFound
}

// fakeRSVPService implements domain.RSVPService for handler tests.
type fakeRSVPService struct {
	submitted *domain.RSVP
	err       error
}

func (f *fakeRSVPService) Submit(ctx context.Context, rsvp *domain.RSVP) error {
	if f.err != nil {
		return f.err
	}
	rsvp.ID = "rsvp-1"
	f.submitted = rsvp
	return nil
}

func (f *fakeRSVPService) ListForUser(ctx context.Context, userID string) ([]*domain.RSVP, error) {
	return []*domain.RSVP{}, f.err
}

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }
