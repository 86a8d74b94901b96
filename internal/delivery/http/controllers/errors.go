package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/delivery/http/middleware"
	"weddinginvitation/internal/domain"
)

// writeServiceError maps a service error to its HTTP response. Unknown errors are
// logged in full and answered with the opaque 500 body.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "you do not own the referenced resource")
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
	case errors.Is(err, domain.ErrDuplicateSlug):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "slug already taken")
	case errors.Is(err, domain.ErrParentNotFound):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "referenced parent does not exist")
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidCredentials, "invalid credentials")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
	}
}

// callerID returns the authenticated user id or writes 401.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "access denied")
	}
	return id, ok
}

// requireUUID appends a message when value is empty or not a UUID.
func requireUUID(errs []string, field, value string) []string {
	if value == "" {
		return append(errs, field+" is required")
	}
	if _, err := uuid.Parse(value); err != nil {
		return append(errs, field+" must be a UUID")
	}
	return errs
}

// oneOf reports whether v is empty or one of allowed.
func oneOf(v string, allowed ...string) bool {
	if v == "" {
		return true
	}
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
