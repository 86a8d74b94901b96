package domain

import "context"

// Attendance values for an RSVP.
const (
	AttendanceAttending    = "attending"
	AttendanceNotAttending = "not_attending"
	AttendanceMaybe        = "maybe"
)

// RSVP is an attendance reply submitted by a guest without authentication.
// swagger:model RSVP
type RSVP struct {
	ID         string `json:"id_rsvp"`
	GuestID    string `json:"id_guest"`
	Attendance string `json:"attendance"`
	TotalGuest int    `json:"total_guest"`
	Message    string `json:"message"`
}

// RSVPRepository defines the interface for rsvp storage
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *RSVP) error
	ListByUserID(ctx context.Context, userID string) ([]*RSVP, error)
}

// RSVPService records public replies and lists replies reachable from the caller.
type RSVPService interface {
	Submit(ctx context.Context, rsvp *RSVP) error
	ListForUser(ctx context.Context, userID string) ([]*RSVP, error)
}
