package domain

import "context"

// Gallery media types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// GalleryItem is a photo or video attached to a wedding.
// swagger:model GalleryItem
type GalleryItem struct {
	ID        string `json:"id_gallery"`
	WeddingID string `json:"id_wedding"`
	MediaType string `json:"media_type"`
	FileURL   string `json:"file_url"`
	Caption   string `json:"caption"`
}

// GalleryRepository defines the interface for gallery storage
type GalleryRepository interface {
	Create(ctx context.Context, item *GalleryItem) error
	ListByUserID(ctx context.Context, userID string) ([]*GalleryItem, error)
}

// GalleryService manages gallery items. Create requires the caller to own the wedding.
type GalleryService interface {
	Create(ctx context.Context, userID string, item *GalleryItem) error
	ListForUser(ctx context.Context, userID string) ([]*GalleryItem, error)
}
