package domain

import "context"

// Guest is a person invited through an invitation.
// swagger:model Guest
type Guest struct {
	ID             string `json:"id_guest"`
	InvitationID   string `json:"id_invitation"`
	GuestName      string `json:"guest_name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	InvitationType string `json:"invitation_type"`
}

// GuestRepository defines the interface for guest storage
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	ListByUserID(ctx context.Context, userID string) ([]*Guest, error)
}

// GuestService manages guests. Create requires the caller to own the invitation.
type GuestService interface {
	Create(ctx context.Context, userID string, guest *Guest) error
	ListForUser(ctx context.Context, userID string) ([]*Guest, error)
}
