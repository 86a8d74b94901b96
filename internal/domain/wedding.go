package domain

import (
	"context"
	"time"
)

// Wedding is owned directly by a user.
// swagger:model Wedding
type Wedding struct {
	ID             string     `json:"id_wedding"`
	UserID         string     `json:"id_user"`
	GroomName      string     `json:"groom_name"`
	BrideName      string     `json:"bride_name"`
	WeddingDate    *time.Time `json:"wedding_date"`
	AkadDate       *time.Time `json:"akad_date"`
	ReceptionDate  *time.Time `json:"reception_date"`
	Location       string     `json:"location"`
	GoogleMapsLink string     `json:"google_maps_link"`
}

// WeddingRepository defines the interface for wedding storage
type WeddingRepository interface {
	Create(ctx context.Context, wedding *Wedding) error
	ListByUserID(ctx context.Context, userID string) ([]*Wedding, error)
}

// WeddingService creates weddings for the caller and lists the caller's weddings.
type WeddingService interface {
	Create(ctx context.Context, wedding *Wedding) error
	ListForUser(ctx context.Context, userID string) ([]*Wedding, error)
}
