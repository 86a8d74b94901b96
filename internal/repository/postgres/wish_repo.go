package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

type wishRepository struct {
	DB *sql.DB
}

func NewWishRepository(db *sql.DB) domain.WishRepository {
	return &wishRepository{DB: db}
}

func (r *wishRepository) Create(ctx context.Context, wish *domain.Wish) error {
	query := `
		INSERT INTO wishes (id_guest, message)
		VALUES ($1, $2)
		RETURNING id_wish
	`
	err := r.DB.QueryRowContext(ctx, query, wish.GuestID, wish.Message).Scan(&wish.ID)
	return mapError(err)
}

func (r *wishRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Wish, error) {
	query := `
		SELECT id_wish, id_guest, message
		FROM wishes
		WHERE id_guest IN (` + guestsOfUser + `)
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	wishes := make([]*domain.Wish, 0)
	for rows.Next() {
		wish := &domain.Wish{}
		if err := rows.Scan(&wish.ID, &wish.GuestID, &wish.Message); err != nil {
			return nil, err
		}
		wishes = append(wishes, wish)
	}
	return wishes, rows.Err()
}
