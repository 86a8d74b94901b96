package domain

import "context"

// OwnershipRepository resolves rows along the chain
// user -> wedding -> invitation -> guest to the user that owns them.
type OwnershipRepository interface {
	// WeddingOwnedBy reports whether weddingID exists and belongs to userID.
	WeddingOwnedBy(ctx context.Context, weddingID, userID string) (bool, error)
	// InvitationOwnedBy reports whether invitationID exists under a wedding of userID.
	InvitationOwnedBy(ctx context.Context, invitationID, userID string) (bool, error)
	// GuestOwner returns the user at the root of guestID's chain, or ErrNotFound.
	GuestOwner(ctx context.Context, guestID string) (*User, error)
}
