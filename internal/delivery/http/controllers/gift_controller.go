package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

// CreateGiftRequest is the request body for POST /api/gift
type CreateGiftRequest struct {
	WeddingID     string `json:"id_wedding"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

// Validate implements Validator.
func (c CreateGiftRequest) Validate() []string {
	errs := requireUUID(nil, "id_wedding", c.WeddingID)
	if strings.TrimSpace(c.BankName) == "" {
		errs = append(errs, "bank_name is required")
	}
	if strings.TrimSpace(c.AccountName) == "" {
		errs = append(errs, "account_name is required")
	}
	if strings.TrimSpace(c.AccountNumber) == "" {
		errs = append(errs, "account_number is required")
	}
	return errs
}

type GiftController struct {
	Logger  *slog.Logger
	Service domain.GiftService
}

func NewGiftController(logger *slog.Logger, svc domain.GiftService) *GiftController {
	return &GiftController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Add a gift account
// @Description Add a bank account for gifts to a wedding owned by the authenticated user.
// @Tags gift
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateGiftRequest true "Gift account"
// @Success 201 {object} domain.Gift
// @Failure 400 {object} helpers.APIError "code: bad_request or invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/gift [post]
func (c *GiftController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req CreateGiftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	gift := &domain.Gift{
		WeddingID:     req.WeddingID,
		BankName:      strings.TrimSpace(req.BankName),
		AccountName:   strings.TrimSpace(req.AccountName),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
	}
	if err := c.Service.Create(r.Context(), userID, gift); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, gift)
}

// List godoc
// @Summary List gift accounts
// @Description Gift accounts of the authenticated user's weddings.
// @Tags gift
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Gift
// @Failure 400 {object} helpers.APIError "code: invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/gift [get]
func (c *GiftController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	gifts, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, gifts)
}
