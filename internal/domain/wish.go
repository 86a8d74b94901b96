package domain

import "context"

// Wish is a message left by a guest without authentication.
// swagger:model Wish
type Wish struct {
	ID      string `json:"id_wish"`
	GuestID string `json:"id_guest"`
	Message string `json:"message"`
}

// WishRepository defines the interface for wishes storage
type WishRepository interface {
	Create(ctx context.Context, wish *Wish) error
	ListByUserID(ctx context.Context, userID string) ([]*Wish, error)
}

// WishService records public wishes and lists wishes reachable from the caller.
type WishService interface {
	Submit(ctx context.Context, wish *Wish) error
	ListForUser(ctx context.Context, userID string) ([]*Wish, error)
}
