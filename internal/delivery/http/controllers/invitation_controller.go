package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"weddinginvitation/internal/delivery/http/helpers"
	"weddinginvitation/internal/domain"
)

// slugRegexp matches lower-case URL-safe slugs such as "ana-budi-2026".
var slugRegexp = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateInvitationRequest is the request body for POST /api/invitation
type CreateInvitationRequest struct {
	WeddingID       string `json:"id_wedding"`
	Slug            string `json:"slug"`
	Theme           string `json:"theme"`
	CoverText       string `json:"cover_text"`
	BackgroundMusic string `json:"background_music"`
	Status          string `json:"status"` // optional: draft (default), published or archived
}

// Validate implements Validator. The slug is checked after lower-casing.
func (c CreateInvitationRequest) Validate() []string {
	errs := requireUUID(nil, "id_wedding", c.WeddingID)
	slug := strings.TrimSpace(strings.ToLower(c.Slug))
	if slug == "" {
		errs = append(errs, "slug is required")
	} else if !slugRegexp.MatchString(slug) {
		errs = append(errs, "slug may contain only letters, digits and single hyphens")
	}
	if !oneOf(c.Status, domain.InvitationStatusDraft, domain.InvitationStatusPublished, domain.InvitationStatusArchived) {
		errs = append(errs, `status must be "draft", "published" or "archived"`)
	}
	return errs
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an invitation
// @Description Create an invitation under a wedding owned by the authenticated user.
// @Tags invitation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateInvitationRequest true "Invitation data"
// @Success 201 {object} domain.Invitation
// @Failure 400 {object} helpers.APIError "code: bad_request or invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 409 {object} helpers.APIError "code: conflict"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/invitation [post]
func (c *InvitationController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req CreateInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	invitation := &domain.Invitation{
		WeddingID:       req.WeddingID,
		Slug:            req.Slug,
		Theme:           req.Theme,
		CoverText:       req.CoverText,
		BackgroundMusic: req.BackgroundMusic,
		Status:          req.Status,
	}
	if err := c.Service.Create(r.Context(), userID, invitation); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, invitation)
}

// List godoc
// @Summary List invitations
// @Description Invitations under the authenticated user's weddings.
// @Tags invitation
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Invitation
// @Failure 400 {object} helpers.APIError "code: invalid_token"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/invitation [get]
func (c *InvitationController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	invitations, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, invitations)
}

// GetBySlug godoc
// @Summary Get an invitation by slug
// @Description Public lookup used by the invitation page. No authentication.
// @Tags invitation
// @Produce json
// @Param slug path string true "Invitation slug"
// @Success 200 {object} domain.Invitation
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/invitation/{slug} [get]
func (c *InvitationController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	invitation, err := c.Service.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invitation not found")
			return
		}
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, invitation)
}
