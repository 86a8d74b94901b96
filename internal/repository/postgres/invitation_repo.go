package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitation (id_wedding, slug, theme, cover_text, background_music, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_invitation
	`
	err := r.DB.QueryRowContext(ctx, query,
		inv.WeddingID, inv.Slug, inv.Theme, inv.CoverText, inv.BackgroundMusic, inv.Status,
	).Scan(&inv.ID)
	return mapError(err)
}

func (r *invitationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Invitation, error) {
	query := `
		SELECT id_invitation, id_wedding, slug, theme, cover_text, background_music, status
		FROM invitation
		WHERE id_wedding IN (` + weddingsOfUser + `)
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	invitations := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv := &domain.Invitation{}
		if err := rows.Scan(&inv.ID, &inv.WeddingID, &inv.Slug, &inv.Theme, &inv.CoverText, &inv.BackgroundMusic, &inv.Status); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Invitation, error) {
	query := `
		SELECT id_invitation, id_wedding, slug, theme, cover_text, background_music, status
		FROM invitation
		WHERE slug = $1
	`
	inv := &domain.Invitation{}
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(&inv.ID, &inv.WeddingID, &inv.Slug, &inv.Theme, &inv.CoverText, &inv.BackgroundMusic, &inv.Status)
	if err != nil {
		return nil, mapError(err)
	}
	return inv, nil
}
