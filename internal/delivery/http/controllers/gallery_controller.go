package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

// CreateGalleryRequest is the request body for POST /api/gallery
type CreateGalleryRequest struct {
	WeddingID string `json:"id_wedding"`
	MediaType string `json:"media_type"` // optional: image (default) or video
	FileURL   string `json:"file_url"`
	Caption   string `json:"caption"`
}

// Validate implements Validator.
func (c CreateGalleryRequest) Validate() []string {
	errs := requireUUID(nil, "id_wedding", c.WeddingID)
	if strings.TrimSpace(c.FileURL) == "" {
		errs = append(errs, "file_url is required")
	}
	if !oneOf(c.MediaType, domain.MediaTypeImage, domain.MediaTypeVideo) {
		errs = append(errs, `media_type must be "image" or "video"`)
	}
	return errs
}

type GalleryController struct {
	Logger  *slog.Logger
	Service domain.GalleryService
}

func NewGalleryController(logger *slog.Logger, svc domain.GalleryService) *GalleryController {
	return &GalleryController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Add a gallery item
// @Description Attach a photo or video URL to a wedding owned by the authenticated user.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateGalleryRequest true "Gallery item"
// @Success 201 {object} domain.GalleryItem
// @Failure 400 {object} helpers.APIError "code: bad_request or invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/gallery [post]
func (c *GalleryController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req CreateGalleryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item := &domain.GalleryItem{
		WeddingID: req.WeddingID,
		MediaType: req.MediaType,
		FileURL:   strings.TrimSpace(req.FileURL),
		Caption:   req.Caption,
	}
	if err := c.Service.Create(r.Context(), userID, item); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, item)
}

// List godoc
// @Summary List gallery items
// @Description Gallery items of the authenticated user's weddings.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.GalleryItem
// @Failure 400 {object} helpers.APIError "code: invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/gallery [get]
func (c *GalleryController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	items, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, items)
}
