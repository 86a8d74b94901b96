package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"weddinginvitation/internal/domain"
)

// PostgreSQL error codes and constraint names mapped to domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	usersEmailKey     = "users_email_key"
	invitationSlugKey = "invitation_slug_key"
)

// mapError translates driver errors into domain sentinels. Unknown errors pass through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case uniqueViolation:
		switch pqErr.Constraint {
		case usersEmailKey:
			return domain.ErrDuplicateEmail
		case invitationSlugKey:
			return domain.ErrDuplicateSlug
		}
	case foreignKeyViolation:
		return domain.ErrParentNotFound
	}
	return err
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
