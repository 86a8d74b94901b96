package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

// Ownership chain subqueries. Each selects the ids reachable from the user bound to $1,
// so every scoped list and ownership check shares one definition of the chain.
const (
	weddingsOfUser    = `SELECT id_wedding FROM wedding WHERE id_user = $1`
	invitationsOfUser = `SELECT id_invitation FROM invitation WHERE id_wedding IN (` + weddingsOfUser + `)`
	guestsOfUser      = `SELECT id_guest FROM guest WHERE id_invitation IN (` + invitationsOfUser + `)`
)

type ownershipRepository struct {
	DB *sql.DB
}

// NewOwnershipRepository returns a domain.OwnershipRepository implemented with Postgres.
func NewOwnershipRepository(db *sql.DB) domain.OwnershipRepository {
	return &ownershipRepository{DB: db}
}

func (r *ownershipRepository) WeddingOwnedBy(ctx context.Context, weddingID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM wedding WHERE id_wedding = $2 AND id_user = $1
		)
	`
	var owned bool
	err := r.DB.QueryRowContext(ctx, query, userID, weddingID).Scan(&owned)
	return owned, err
}

func (r *ownershipRepository) InvitationOwnedBy(ctx context.Context, invitationID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM invitation WHERE id_invitation = $2 AND id_wedding IN (` + weddingsOfUser + `)
		)
	`
	var owned bool
	err := r.DB.QueryRowContext(ctx, query, userID, invitationID).Scan(&owned)
	return owned, err
}

func (r *ownershipRepository) GuestOwner(ctx context.Context, guestID string) (*domain.User, error) {
	query := `
		SELECT u.id_user, u.name, u.email, u.role
		FROM guest g
		JOIN invitation i ON i.id_invitation = g.id_invitation
		JOIN wedding w ON w.id_wedding = i.id_wedding
		JOIN users u ON u.id_user = w.id_user
		WHERE g.id_guest = $1
	`
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, guestID).Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}
