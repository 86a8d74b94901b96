package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

type galleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{DB: db}
}

func (r *galleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	query := `
		INSERT INTO gallery (id_wedding, media_type, file_url, caption)
		VALUES ($1, $2, $3, $4)
		RETURNING id_gallery
	`
	err := r.DB.QueryRowContext(ctx, query, item.WeddingID, item.MediaType, item.FileURL, item.Caption).Scan(&item.ID)
	return mapError(err)
}

func (r *galleryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.GalleryItem, error) {
	query := `
		SELECT id_gallery, id_wedding, media_type, file_url, caption
		FROM gallery
		WHERE id_wedding IN (` + weddingsOfUser + `)
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*domain.GalleryItem, 0)
	for rows.Next() {
		item := &domain.GalleryItem{}
		if err := rows.Scan(&item.ID, &item.WeddingID, &item.MediaType, &item.FileURL, &item.Caption); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
