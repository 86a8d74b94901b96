package domain

import "context"

// Gift is a bank account guests can send gifts to.
// swagger:model Gift
type Gift struct {
	ID            string `json:"id_gift"`
	WeddingID     string `json:"id_wedding"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

// GiftRepository defines the interface for gift storage
type GiftRepository interface {
	Create(ctx context.Context, gift *Gift) error
	ListByUserID(ctx context.Context, userID string) ([]*Gift, error)
}

// GiftService manages gift accounts. Create requires the caller to own the wedding.
type GiftService interface {
	Create(ctx context.Context, userID string, gift *Gift) error
	ListForUser(ctx context.Context, userID string) ([]*Gift, error)
}
