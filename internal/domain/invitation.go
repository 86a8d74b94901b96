package domain

import "context"

// Invitation status values.
const (
	InvitationStatusDraft     = "draft"
	InvitationStatusPublished = "published"
	InvitationStatusArchived  = "archived"
)

// Invitation is a digital invitation for a wedding, publicly addressable by its slug.
// swagger:model Invitation
type Invitation struct {
	ID              string `json:"id_invitation"`
	WeddingID       string `json:"id_wedding"`
	Slug            string `json:"slug"`
	Theme           string `json:"theme"`
	CoverText       string `json:"cover_text"`
	BackgroundMusic string `json:"background_music"`
	Status          string `json:"status"`
}

// InvitationRepository defines the interface for invitation storage
type InvitationRepository interface {
	Create(ctx context.Context, invitation *Invitation) error
	ListByUserID(ctx context.Context, userID string) ([]*Invitation, error)
	GetBySlug(ctx context.Context, slug string) (*Invitation, error)
}

// InvitationCache caches public slug lookups. A miss returns ErrNotFound.
type InvitationCache interface {
	Get(ctx context.Context, slug string) (*Invitation, error)
	Set(ctx context.Context, invitation *Invitation) error
}

// InvitationService manages invitations. Create requires the caller to own the wedding.
type InvitationService interface {
	Create(ctx context.Context, userID string, invitation *Invitation) error
	ListForUser(ctx context.Context, userID string) ([]*Invitation, error)
	GetBySlug(ctx context.Context, slug string) (*Invitation, error)
}
