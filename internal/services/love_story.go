package services

import (
	"context"
	"fmt"
	"time"

	"weddinginvitation/internal/domain"
)

type loveStoryService struct {
	storyRepo      domain.LoveStoryRepository
	ownership      domain.OwnershipRepository
	contextTimeout time.Duration
}

func NewLoveStoryService(storyRepo domain.LoveStoryRepository, ownership domain.OwnershipRepository, timeout time.Duration) domain.LoveStoryService {
	return &loveStoryService{storyRepo: storyRepo, ownership: ownership, contextTimeout: timeout}
}

func (s *loveStoryService) Create(ctx context.Context, userID string, story *domain.LoveStory) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireWedding(ctx, s.ownership, story.WeddingID, userID); err != nil {
		return err
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return fmt.Errorf("create love story: %w", err)
	}
	return nil
}

func (s *loveStoryService) ListForUser(ctx context.Context, userID string) ([]*domain.LoveStory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stories, err := s.storyRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list love stories: %w", err)
	}
	if stories == nil {
		stories = []*domain.LoveStory{}
	}
	return stories, nil
}
