package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

// CreateGuestRequest is the request body for POST /api/guest
type CreateGuestRequest struct {
	InvitationID   string `json:"id_invitation"`
	GuestName      string `json:"guest_name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	InvitationType string `json:"invitation_type"`
}

// Validate implements Validator.
func (c CreateGuestRequest) Validate() []string {
	errs := requireUUID(nil, "id_invitation", c.InvitationID)
	if strings.TrimSpace(c.GuestName) == "" {
		errs = append(errs, "guest_name is required")
	}
	return errs
}

type GuestController struct {
	Logger  *slog.Logger
	Service domain.GuestService
}

func NewGuestController(logger *slog.Logger, svc domain.GuestService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Add a guest
// @Description Add a guest to an invitation owned by the authenticated user.
// @Tags guest
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateGuestRequest true "Guest data"
// @Success 201 {object} domain.Guest
// @Failure 400 {object} helpers.APIError "code: bad_request or invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/guest [post]
func (c *GuestController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req CreateGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest := &domain.Guest{
		InvitationID:   req.InvitationID,
		GuestName:      strings.TrimSpace(req.GuestName),
		Phone:          req.Phone,
		Address:        req.Address,
		InvitationType: req.InvitationType,
	}
	if err := c.Service.Create(r.Context(), userID, guest); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, guest)
}

// List godoc
// @Summary List guests
// @Description Guests of every invitation under the authenticated user's weddings.
// @Tags guest
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Guest
// @Failure 400 {object} helpers.APIError "code: invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/guest [get]
func (c *GuestController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	guests, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, guests)
}
