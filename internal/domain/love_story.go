package domain

import (
	"context"
	"time"
)

// LoveStory is one entry of the couple's story timeline.
// swagger:model LoveStory
type LoveStory struct {
	ID          string     `json:"id_story"`
	WeddingID   string     `json:"id_wedding"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StoryDate   *time.Time `json:"story_date"`
}

// LoveStoryRepository defines the interface for love story storage
type LoveStoryRepository interface {
	Create(ctx context.Context, story *LoveStory) error
	ListByUserID(ctx context.Context, userID string) ([]*LoveStory, error)
}

// LoveStoryService manages love story entries. Create requires the caller to own the wedding.
type LoveStoryService interface {
	Create(ctx context.Context, userID string, story *LoveStory) error
	ListForUser(ctx context.Context, userID string) ([]*LoveStory, error)
}
