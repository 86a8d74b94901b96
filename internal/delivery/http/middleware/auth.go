package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the authenticated identity. Used by auth middleware.
func SetIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the authenticated identity from the context, if present.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok || identity.UserID == "" {
		return "", false
	}
	return identity.UserID, true
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the identity in the request context.
// A missing header or token responds 401; a token that is present but fails verification responds 400.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := strings.TrimSpace(r.Header.Get("Authorization"))
			scheme, token, _ := strings.Cut(auth, " ")
			token = strings.TrimSpace(token)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "access denied")
				return
			}
			if !strings.EqualFold(scheme, "Bearer") {
				h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeInvalidToken, "invalid token")
				return
			}
			identity, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrMissingToken) {
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "access denied")
					return
				}
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeInvalidToken, "invalid token")
				return
			}
			r = r.WithContext(SetIdentity(r.Context(), identity))
			next(w, r)
		}
	}
}
