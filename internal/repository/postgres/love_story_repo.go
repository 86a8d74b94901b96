package postgres

import (
	"context"
	"database/sql"

	"weddinginvitation/internal/domain"
)

type loveStoryRepository struct {
	DB *sql.DB
}

func NewLoveStoryRepository(db *sql.DB) domain.LoveStoryRepository {
	return &loveStoryRepository{DB: db}
}

func (r *loveStoryRepository) Create(ctx context.Context, s *domain.LoveStory) error {
	query := `
		INSERT INTO love_story (id_wedding, title, description, story_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id_story
	`
	err := r.DB.QueryRowContext(ctx, query, s.WeddingID, s.Title, s.Description, s.StoryDate).Scan(&s.ID)
	return mapError(err)
}

func (r *loveStoryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.LoveStory, error) {
	query := `
		SELECT id_story, id_wedding, title, description, story_date
		FROM love_story
		WHERE id_wedding IN (` + weddingsOfUser + `)
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stories := make([]*domain.LoveStory, 0)
	for rows.Next() {
		s := &domain.LoveStory{}
		var storyDate sql.NullTime
		if err := rows.Scan(&s.ID, &s.WeddingID, &s.Title, &s.Description, &storyDate); err != nil {
			return nil, err
		}
		s.StoryDate = timePtr(storyDate)
		stories = append(stories, s)
	}
	return stories, rows.Err()
}
