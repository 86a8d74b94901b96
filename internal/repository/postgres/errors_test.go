package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvitation/internal/domain"
)

func TestMapError(t *testing.T) {
	other := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no rows", err: sql.ErrNoRows, want: domain.ErrNotFound},
		{name: "duplicate email", err: &pq.Error{Code: "23505", Constraint: "users_email_key"}, want: domain.ErrDuplicateEmail},
		{name: "duplicate slug", err: &pq.Error{Code: "23505", Constraint: "invitation_slug_key"}, want: domain.ErrDuplicateSlug},
		{name: "wrapped foreign key", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23503"}), want: domain.ErrParentNotFound},
		{name: "other error passes through", err: other, want: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if tt.want == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapError_unknown_unique_constraint(t *testing.T) {
	in := &pq.Error{Code: "23505", Constraint: "something_else"}
	got := mapError(in)
	assert.Same(t, in, got)
}

func TestTimePtr(t *testing.T) {
	assert.Nil(t, timePtr(sql.NullTime{}))
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	got := timePtr(sql.NullTime{Time: now, Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, now, *got)
}
