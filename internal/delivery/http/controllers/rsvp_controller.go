package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

// SubmitRSVPRequest is the request body for POST /api/rsvp
type SubmitRSVPRequest struct {
	GuestID    string `json:"id_guest"`
	Attendance string `json:"attendance"` // attending, not_attending or maybe
	TotalGuest int    `json:"total_guest"`
	Message    string `json:"message"`
}

// Validate implements Validator.
func (s SubmitRSVPRequest) Validate() []string {
	errs := requireUUID(nil, "id_guest", s.GuestID)
	if s.Attendance == "" {
		errs = append(errs, "attendance is required")
	} else if !oneOf(s.Attendance, domain.AttendanceAttending, domain.AttendanceNotAttending, domain.AttendanceMaybe) {
		errs = append(errs, `attendance must be "attending", "not_attending" or "maybe"`)
	}
	if s.TotalGuest < 0 {
		errs = append(errs, "total_guest must not be negative")
	}
	return errs
}

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit an RSVP
// @Description Public endpoint used by invited guests. The guest id is the only credential.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param body body SubmitRSVPRequest true "RSVP data"
// @Success 201 {object} domain.RSVP
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 429 {object} helpers.APIError "code: too_many_requests"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/rsvp [post]
func (c *RSVPController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	rsvp := &domain.RSVP{
		GuestID:    req.GuestID,
		Attendance: req.Attendance,
		TotalGuest: req.TotalGuest,
		Message:    req.Message,
	}
	if err := c.Service.Submit(r.Context(), rsvp); err != nil {
		if errors.Is(err, domain.ErrParentNotFound) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "guest does not exist")
			return
		}
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, rsvp)
}

// List godoc
// @Summary List RSVPs
// @Description Replies from guests of the authenticated user's invitations.
// @Tags rsvp
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.RSVP
// @Failure 400 {object} helpers.APIError "code: invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/rsvp [get]
func (c *RSVPController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	rsvps, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, rsvps)
}
