package services

import (
	"context"
	"fmt"
	"time"

	"weddinginvitation/internal/domain"
)

type galleryService struct {
	galleryRepo    domain.GalleryRepository
	ownership      domain.OwnershipRepository
	contextTimeout time.Duration
}

func NewGalleryService(galleryRepo domain.GalleryRepository, ownership domain.OwnershipRepository, timeout time.Duration) domain.GalleryService {
	return &galleryService{galleryRepo: galleryRepo, ownership: ownership, contextTimeout: timeout}
}

func (s *galleryService) Create(ctx context.Context, userID string, item *domain.GalleryItem) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireWedding(ctx, s.ownership, item.WeddingID, userID); err != nil {
		return err
	}
	if item.MediaType == "" {
		item.MediaType = domain.MediaTypeImage
	}
	if err := s.galleryRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("create gallery item: %w", err)
	}
	return nil
}

func (s *galleryService) ListForUser(ctx context.Context, userID string) ([]*domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	items, err := s.galleryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	if items == nil {
		items = []*domain.GalleryItem{}
	}
	return items, nil
}
