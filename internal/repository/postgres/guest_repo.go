package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guest (id_invitation, guest_name, phone, address, invitation_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_guest
	`
	err := r.DB.QueryRowContext(ctx, query, g.InvitationID, g.GuestName, g.Phone, g.Address, g.InvitationType).Scan(&g.ID)
	return mapError(err)
}

func (r *guestRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Guest, error) {
	query := `
		SELECT id_guest, id_invitation, guest_name, phone, address, invitation_type
		FROM guest
		WHERE id_invitation IN (` + invitationsOfUser + `)
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.InvitationID, &g.GuestName, &g.Phone, &g.Address, &g.InvitationType); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
