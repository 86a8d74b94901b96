package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

// SubmitWishRequest is the request body for POST /api/wishes
type SubmitWishRequest struct {
	GuestID string `json:"id_guest"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (s SubmitWishRequest) Validate() []string {
	errs := requireUUID(nil, "id_guest", s.GuestID)
	if strings.TrimSpace(s.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

type WishController struct {
	Logger  *slog.Logger
	Service domain.WishService
}

func NewWishController(logger *slog.Logger, svc domain.WishService) *WishController {
	return &WishController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Leave a wish
// @Description Public endpoint used by invited guests.
// @Tags wishes
// @Accept json
// @Produce json
// @Param body body SubmitWishRequest true "Wish"
// @Success 201 {object} domain.Wish
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 429 {object} helpers.APIError "code: too_many_requests"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/wishes [post]
func (c *WishController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitWishRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	wish := &domain.Wish{GuestID: req.GuestID, Message: req.Message}
	if err := c.Service.Submit(r.Context(), wish); err != nil {
		if errors.Is(err, domain.ErrParentNotFound) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "guest does not exist")
			return
		}
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, wish)
}

// List godoc
// @Summary List wishes
// @Description Wishes from guests of the authenticated user's invitations.
// @Tags wishes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Wish
// @Failure 400 {object} helpers.APIError "code: invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/wishes [get]
func (c *WishController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	wishes, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, wishes)
}
