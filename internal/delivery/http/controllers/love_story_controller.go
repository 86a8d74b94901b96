package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

// CreateLoveStoryRequest is the request body for POST /api/love-story
type CreateLoveStoryRequest struct {
	WeddingID   string `json:"id_wedding"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StoryDate   *Date  `json:"story_date" swaggertype:"string"`
}

// Validate implements Validator.
func (c CreateLoveStoryRequest) Validate() []string {
	errs := requireUUID(nil, "id_wedding", c.WeddingID)
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

type LoveStoryController struct {
	Logger  *slog.Logger
	Service domain.LoveStoryService
}

func NewLoveStoryController(logger *slog.Logger, svc domain.LoveStoryService) *LoveStoryController {
	return &LoveStoryController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Add a love story entry
// @Description Add a timeline entry to a wedding owned by the authenticated user.
// @Tags love-story
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateLoveStoryRequest true "Story entry"
// @Success 201 {object} domain.LoveStory
// @Failure 400 {object} helpers.APIError "code: bad_request or invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/love-story [post]
func (c *LoveStoryController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req CreateLoveStoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	story := &domain.LoveStory{
		WeddingID:   req.WeddingID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		StoryDate:   req.StoryDate.ptr(),
	}
	if err := c.Service.Create(r.Context(), userID, story); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, story)
}

// List godoc
// @Summary List love story entries
// @Description Story entries of the authenticated user's weddings.
// @Tags love-story
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.LoveStory
// @Failure 400 {object} helpers.APIError "code: invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/love-story [get]
func (c *LoveStoryController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	stories, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, stories)
}
