package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"weddinginvitation/internal/adapters/auth"
	"weddinginvitation/internal/delivery/http/controllers"
	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/delivery/http/middleware"
	"weddinginvitation/internal/domain"
	"weddinginvitation/internal/repository/memory"
	"weddinginvitation/internal/services"
)

const testSecret = "router-test-secret"

type testServer struct {
	handler http.Handler
	store   *memory.Store
	reg     *prometheus.Registry
}

func newTestServer(t *testing.T, rps float64, burst int) *testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	store := memory.NewStore()
	tokens := auth.NewJWT(testSecret)
	timeout := 2 * time.Second
	reg := prometheus.NewRegistry()

	c := Controllers{
		Auth:       controllers.NewAuthController(logger, services.NewAuthService(store.Users(), auth.NewBcryptHasher(bcrypt.MinCost), tokens, nil, logger, auth.TokenExpiry, timeout)),
		Wedding:    controllers.NewWeddingController(logger, services.NewWeddingService(store.Weddings(), timeout)),
		Invitation: controllers.NewInvitationController(logger, services.NewInvitationService(store.Invitations(), store.Ownership(), nil, logger, timeout)),
		Guest:      controllers.NewGuestController(logger, services.NewGuestService(store.Guests(), store.Ownership(), timeout)),
		RSVP:       controllers.NewRSVPController(logger, services.NewRSVPService(store.RSVPs(), store.Ownership(), nil, logger, timeout)),
		Wish:       controllers.NewWishController(logger, services.NewWishService(store.Wishes(), timeout)),
		Gallery:    controllers.NewGalleryController(logger, services.NewGalleryService(store.Gallery(), store.Ownership(), timeout)),
		LoveStory:  controllers.NewLoveStoryController(logger, services.NewLoveStoryService(store.LoveStories(), store.Ownership(), timeout)),
		Gift:       controllers.NewGiftController(logger, services.NewGiftService(store.Gifts(), store.Ownership(), timeout)),
		Health:     controllers.NewHealthController(logger, store),
	}
	handler := NewRouter(RouterConfig{
		Logger:         logger,
		Verifier:       tokens,
		Limiter:        middleware.NewRateLimiter(ctx, rps, burst),
		Metrics:        middleware.NewMetrics(reg),
		Gatherer:       reg,
		AllowedOrigins: []string{"*"},
	}, c)
	return &testServer{handler: handler, store: store, reg: reg}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "http://test"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

// signUp registers and logs in a user, returning the bearer token.
func (s *testServer) signUp(t *testing.T, name, email string) string {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"name": name, "email": email, "password": "pw-" + name})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "pw-" + name})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp controllers.LoginResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, "Bearer", resp.TokenType)
	return resp.Token
}

func decodeInto[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

func TestRouter_ownerFlow(t *testing.T) {
	s := newTestServer(t, 1000, 1000)
	token := s.signUp(t, "alice", "alice@example.com")

	rr := s.do(t, http.MethodGet, "/api/wedding", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = s.do(t, http.MethodPost, "/api/wedding", token, map[string]string{"groom_name": "Budi", "bride_name": "Alice", "wedding_date": "2026-11-20"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	wedding := decodeInto[domain.Wedding](t, rr)
	require.NotEmpty(t, wedding.ID)

	rr = s.do(t, http.MethodPost, "/api/invitation", token, map[string]string{"id_wedding": wedding.ID, "slug": "Alice-Budi"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	invitation := decodeInto[domain.Invitation](t, rr)
	assert.Equal(t, "alice-budi", invitation.Slug)
	assert.Equal(t, domain.InvitationStatusDraft, invitation.Status)

	rr = s.do(t, http.MethodPost, "/api/guest", token, map[string]string{"id_invitation": invitation.ID, "guest_name": "Rina"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	guest := decodeInto[domain.Guest](t, rr)

	// Guests reply without a token.
	rr = s.do(t, http.MethodGet, "/api/invitation/alice-budi", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, invitation, decodeInto[domain.Invitation](t, rr))

	rr = s.do(t, http.MethodPost, "/api/rsvp", "", map[string]any{"id_guest": guest.ID, "attendance": "attending", "total_guest": 2})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	rr = s.do(t, http.MethodPost, "/api/wishes", "", map[string]string{"id_guest": guest.ID, "message": "Congrats!"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodGet, "/api/rsvp", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rsvps := decodeInto[[]domain.RSVP](t, rr)
	require.Len(t, rsvps, 1)
	assert.Equal(t, guest.ID, rsvps[0].GuestID)

	rr = s.do(t, http.MethodGet, "/api/wishes", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decodeInto[[]domain.Wish](t, rr), 1)

	for _, tc := range []struct {
		path string
		body map[string]string
	}{
		{"/api/gallery", map[string]string{"id_wedding": wedding.ID, "file_url": "https://cdn.example.com/1.jpg"}},
		{"/api/love-story", map[string]string{"id_wedding": wedding.ID, "title": "First met", "story_date": "2019-02-14"}},
		{"/api/gift", map[string]string{"id_wedding": wedding.ID, "bank_name": "BCA", "account_name": "Alice", "account_number": "123"}},
	} {
		rr = s.do(t, http.MethodPost, tc.path, token, tc.body)
		require.Equal(t, http.StatusCreated, rr.Code, "%s: %s", tc.path, rr.Body.String())
		rr = s.do(t, http.MethodGet, tc.path, token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, decodeInto[[]map[string]any](t, rr), 1, tc.path)
	}
}

func TestRouter_authGate(t *testing.T) {
	s := newTestServer(t, 1000, 1000)
	expired, err := auth.NewJWT(testSecret).WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue(domain.Identity{UserID: "u-1", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, err)
	forged, err := auth.NewJWT("other-secret").Issue(domain.Identity{UserID: "u-1", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized, wantCode: helpers.ErrCodeUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeInvalidToken},
		{name: "expired token", header: "Bearer " + expired, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeInvalidToken},
		{name: "wrong secret", header: "Bearer " + forged, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "http://test/api/wedding", bytes.NewBufferString(`{"groom_name":"A","bride_name":"B"}`))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			s.handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, decodeInto[helpers.APIError](t, rr).Code)
		})
	}

	weddings, err := s.store.Weddings().ListByUserID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Empty(t, weddings)
}

func TestRouter_crossUserWritesAreForbidden(t *testing.T) {
	s := newTestServer(t, 1000, 1000)
	alice := s.signUp(t, "alice", "alice@example.com")
	mallory := s.signUp(t, "mallory", "mallory@example.com")

	rr := s.do(t, http.MethodPost, "/api/wedding", alice, map[string]string{"groom_name": "Budi", "bride_name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)
	wedding := decodeInto[domain.Wedding](t, rr)
	rr = s.do(t, http.MethodPost, "/api/invitation", alice, map[string]string{"id_wedding": wedding.ID, "slug": "alice-budi"})
	require.Equal(t, http.StatusCreated, rr.Code)
	invitation := decodeInto[domain.Invitation](t, rr)

	writes := []struct {
		path string
		body map[string]string
	}{
		{"/api/invitation", map[string]string{"id_wedding": wedding.ID, "slug": "stolen"}},
		{"/api/guest", map[string]string{"id_invitation": invitation.ID, "guest_name": "Intruder"}},
		{"/api/gallery", map[string]string{"id_wedding": wedding.ID, "file_url": "https://evil.example.com/x.jpg"}},
		{"/api/love-story", map[string]string{"id_wedding": wedding.ID, "title": "Not ours"}},
		{"/api/gift", map[string]string{"id_wedding": wedding.ID, "bank_name": "X", "account_name": "Y", "account_number": "Z"}},
	}
	for _, w := range writes {
		t.Run(w.path, func(t *testing.T) {
			rr := s.do(t, http.MethodPost, w.path, mallory, w.body)
			require.Equal(t, http.StatusForbidden, rr.Code, rr.Body.String())
			assert.Equal(t, helpers.ErrCodeForbidden, decodeInto[helpers.APIError](t, rr).Code)
		})
	}

	// Nothing was inserted under alice's wedding.
	for _, path := range []string{"/api/invitation", "/api/guest", "/api/gallery", "/api/love-story", "/api/gift"} {
		rr := s.do(t, http.MethodGet, path, alice, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		items := decodeInto[[]map[string]any](t, rr)
		if path == "/api/invitation" {
			assert.Len(t, items, 1, path)
			continue
		}
		assert.Empty(t, items, path)
	}

	// And mallory sees none of alice's rows.
	for _, path := range []string{"/api/wedding", "/api/invitation", "/api/guest", "/api/rsvp", "/api/wishes"} {
		rr := s.do(t, http.MethodGet, path, mallory, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String(), path)
	}
}

func TestRouter_publicEndpoints(t *testing.T) {
	s := newTestServer(t, 1000, 1000)

	rr := s.do(t, http.MethodGet, "/api/invitation/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, helpers.APIError{Error: "invitation not found", Code: helpers.ErrCodeNotFound}, decodeInto[helpers.APIError](t, rr))

	rr = s.do(t, http.MethodPost, "/api/rsvp", "", map[string]string{"id_guest": "44444444-4444-4444-4444-444444444444", "attendance": "maybe"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeInto[helpers.APIError](t, rr).Error, "guest does not exist")

	rr = s.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRouter_duplicateRegistrationAndBadLogin(t *testing.T) {
	s := newTestServer(t, 1000, 1000)
	s.signUp(t, "alice", "alice@example.com")

	rr := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "alice2", "email": "ALICE@example.com", "password": "x"})
	require.Equal(t, http.StatusConflict, rr.Code)

	for _, body := range []map[string]string{
		{"email": "alice@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "pw-alice"},
	} {
		rr = s.do(t, http.MethodPost, "/api/auth/login", "", body)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, helpers.APIError{Error: "invalid credentials", Code: helpers.ErrCodeInvalidCredentials}, decodeInto[helpers.APIError](t, rr))
	}
}

func TestRouter_rateLimitsPublicWrites(t *testing.T) {
	s := newTestServer(t, 0.001, 1)

	rr := s.do(t, http.MethodPost, "/api/wishes", "", map[string]string{"id_guest": "44444444-4444-4444-4444-444444444444", "message": "hi"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/wishes", "", map[string]string{"id_guest": "44444444-4444-4444-4444-444444444444", "message": "hi"})
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))

	// Reads of the public invitation are not limited.
	rr = s.do(t, http.MethodGet, "/api/invitation/anything", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_preflightAndMetrics(t *testing.T) {
	s := newTestServer(t, 1000, 1000)

	req := httptest.NewRequest(http.MethodOptions, "http://test/api/rsvp", nil)
	req.Header.Set("Origin", "https://invite.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	s.do(t, http.MethodGet, "/api/invitation/a", "", nil)
	s.do(t, http.MethodGet, "/api/invitation/b", "", nil)

	rr = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `route="GET /api/invitation/{slug}"`)

	count, err := testutil.GatherAndCount(s.reg, "wedding_http_requests_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 2)
}
