package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO rsvp (id_guest, attendance, total_guest, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id_rsvp
	`
	err := r.DB.QueryRowContext(ctx, query, rsvp.GuestID, rsvp.Attendance, rsvp.TotalGuest, rsvp.Message).Scan(&rsvp.ID)
	return mapError(err)
}

func (r *rsvpRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.RSVP, error) {
	query := `
		SELECT id_rsvp, id_guest, attendance, total_guest, message
		FROM rsvp
		WHERE id_guest IN (` + guestsOfUser + `)
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp := &domain.RSVP{}
		if err := rows.Scan(&rsvp.ID, &rsvp.GuestID, &rsvp.Attendance, &rsvp.TotalGuest, &rsvp.Message); err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}
