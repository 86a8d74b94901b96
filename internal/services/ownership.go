package services

import (
	"context"
	"fmt"

	"weddinginvitation/internal/domain"
)

// requireWedding returns ErrForbidden unless weddingID exists and belongs to userID.
// A missing wedding and someone else's wedding are reported the same way.
func requireWedding(ctx context.Context, ownership domain.OwnershipRepository, weddingID, userID string) error {
	owned, err := ownership.WeddingOwnedBy(ctx, weddingID, userID)
	if err != nil {
		return fmt.Errorf("check wedding ownership: %w", err)
	}
	if !owned {
		return domain.ErrForbidden
	}
	return nil
}

func requireInvitation(ctx context.Context, ownership domain.OwnershipRepository, invitationID, userID string) error {
	owned, err := ownership.InvitationOwnedBy(ctx, invitationID, userID)
	if err != nil {
		return fmt.Errorf("check invitation ownership: %w", err)
	}
	if !owned {
		return domain.ErrForbidden
	}
	return nil
}
