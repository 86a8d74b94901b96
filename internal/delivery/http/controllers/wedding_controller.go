package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

// CreateWeddingRequest is the request body for POST /api/wedding. Dates accept YYYY-MM-DD or RFC 3339.
type CreateWeddingRequest struct {
	GroomName      string `json:"groom_name"`
	BrideName      string `json:"bride_name"`
	WeddingDate    *Date  `json:"wedding_date" swaggertype:"string"`
	AkadDate       *Date  `json:"akad_date" swaggertype:"string"`
	ReceptionDate  *Date  `json:"reception_date" swaggertype:"string"`
	Location       string `json:"location"`
	GoogleMapsLink string `json:"google_maps_link"`
}

// Validate implements Validator.
func (c CreateWeddingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.GroomName) == "" {
		errs = append(errs, "groom_name is required")
	}
	if strings.TrimSpace(c.BrideName) == "" {
		errs = append(errs, "bride_name is required")
	}
	return errs
}

type WeddingController struct {
	Logger  *slog.Logger
	Service domain.WeddingService
}

func NewWeddingController(logger *slog.Logger, svc domain.WeddingService) *WeddingController {
	return &WeddingController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a wedding
// @Description Create a wedding owned by the authenticated user.
// @Tags wedding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateWeddingRequest true "Wedding data"
// @Success 201 {object} domain.Wedding
// @Failure 400 {object} helpers.APIError "code: bad_request or invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/wedding [post]
func (c *WeddingController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req CreateWeddingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	wedding := &domain.Wedding{
		UserID:         userID,
		GroomName:      strings.TrimSpace(req.GroomName),
		BrideName:      strings.TrimSpace(req.BrideName),
		WeddingDate:    req.WeddingDate.ptr(),
		AkadDate:       req.AkadDate.ptr(),
		ReceptionDate:  req.ReceptionDate.ptr(),
		Location:       req.Location,
		GoogleMapsLink: req.GoogleMapsLink,
	}
	if err := c.Service.Create(r.Context(), wedding); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, wedding)
}

// List godoc
// @Summary List weddings
// @Description Weddings owned by the authenticated user.
// @Tags wedding
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Wedding
// @Failure 400 {object} helpers.APIError "code: invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/wedding [get]
func (c *WeddingController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	weddings, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, weddings)
}
