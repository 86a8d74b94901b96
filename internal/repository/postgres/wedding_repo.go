package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

type weddingRepository struct {
	DB *sql.DB
}

func NewWeddingRepository(db *sql.DB) domain.WeddingRepository {
	return &weddingRepository{DB: db}
}

func (r *weddingRepository) Create(ctx context.Context, w *domain.Wedding) error {
	query := `
		INSERT INTO wedding (id_user, groom_name, bride_name, wedding_date, akad_date, reception_date, location, google_maps_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_wedding
	`
	err := r.DB.QueryRowContext(ctx, query,
		w.UserID, w.GroomName, w.BrideName, w.WeddingDate, w.AkadDate, w.ReceptionDate, w.Location, w.GoogleMapsLink,
	).Scan(&w.ID)
	return mapError(err)
}

func (r *weddingRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Wedding, error) {
	query := `
		SELECT id_wedding, id_user, groom_name, bride_name, wedding_date, akad_date, reception_date, location, google_maps_link
		FROM wedding
		WHERE id_user = $1
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	weddings := make([]*domain.Wedding, 0)
	for rows.Next() {
		w := &domain.Wedding{}
		var weddingDate, akadDate, receptionDate sql.NullTime
		if err := rows.Scan(&w.ID, &w.UserID, &w.GroomName, &w.BrideName, &weddingDate, &akadDate, &receptionDate, &w.Location, &w.GoogleMapsLink); err != nil {
			return nil, err
		}
		w.WeddingDate = timePtr(weddingDate)
		w.AkadDate = timePtr(akadDate)
		w.ReceptionDate = timePtr(receptionDate)
		weddings = append(weddings, w)
	}
	return weddings, rows.Err()
}
