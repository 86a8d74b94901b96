package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

type giftRepository struct {
	DB *sql.DB
}

func NewGiftRepository(db *sql.DB) domain.GiftRepository {
	return &giftRepository{DB: db}
}

func (r *giftRepository) Create(ctx context.Context, g *domain.Gift) error {
	query := `
		INSERT INTO gift (id_wedding, bank_name, account_name, account_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id_gift
	`
	err := r.DB.QueryRowContext(ctx, query, g.WeddingID, g.BankName, g.AccountName, g.AccountNumber).Scan(&g.ID)
	return mapError(err)
}

func (r *giftRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Gift, error) {
	query := `
		SELECT id_gift, id_wedding, bank_name, account_name, account_number
		FROM gift
		WHERE id_wedding IN (` + weddingsOfUser + `)
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	gifts := make([]*domain.Gift, 0)
	for rows.Next() {
		g := &domain.Gift{}
		if err := rows.Scan(&g.ID, &g.WeddingID, &g.BankName, &g.AccountName, &g.AccountNumber); err != nil {
			return nil, err
		}
		gifts = append(gifts, g)
	}
	return gifts, rows.Err()
}
