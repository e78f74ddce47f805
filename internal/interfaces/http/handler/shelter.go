package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pawlig/backend/internal/application/partner"
	"github.com/pawlig/backend/internal/domain/shared"
)

// ShelterHandler handles shelter profile endpoints
type ShelterHandler struct {
	BaseHandler
	shelterService *partner.ShelterService
}

// NewShelterHandler creates a new shelter handler
func NewShelterHandler(shelterService *partner.ShelterService) *ShelterHandler {
	return &ShelterHandler{shelterService: shelterService}
}

// List returns the public shelter directory. Only verified shelters are
// listed regardless of the query string.
func (h *ShelterHandler) List(c *gin.Context) {
	var filter partner.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	verified := true
	filter.Verified = &verified

	shelters, total, err := h.shelterService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, shelters, total, shared.PageRequest{Page: filter.Page, PageSize: filter.PageSize})
}

// ListAdmin returns all shelters, honoring the verified query filter
func (h *ShelterHandler) ListAdmin(c *gin.Context) {
	var filter partner.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	shelters, total, err := h.shelterService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, shelters, total, shared.PageRequest{Page: filter.Page, PageSize: filter.PageSize})
}

// GetByID returns a shelter's public profile
func (h *ShelterHandler) GetByID(c *gin.Context) {
	shelterID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shelter ID")
		return
	}

	shelter, err := h.shelterService.GetByID(c.Request.Context(), shelterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	// Unverified shelters are not publicly visible
	if !shelter.Verified {
		h.NotFound(c, "Shelter not found")
		return
	}

	h.Success(c, shelter)
}

// GetOwn returns the authenticated owner's shelter profile
func (h *ShelterHandler) GetOwn(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shelter, err := h.shelterService.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shelter)
}

// UpdateOwn updates the authenticated owner's shelter profile
func (h *ShelterHandler) UpdateOwn(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partner.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	shelter, err := h.shelterService.UpdateOwn(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shelter)
}

type setLogoRequest struct {
	LogoURL string `json:"logo_url" binding:"required,url,max=500"`
}

// SetLogo sets the shelter's logo image
func (h *ShelterHandler) SetLogo(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req setLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	shelter, err := h.shelterService.SetLogo(c.Request.Context(), ownerID, req.LogoURL)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shelter)
}

// Verify marks a shelter as verified (admin only)
func (h *ShelterHandler) Verify(c *gin.Context) {
	shelterID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shelter ID")
		return
	}

	shelter, err := h.shelterService.Verify(c.Request.Context(), shelterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shelter)
}

// Unverify removes a shelter's verified mark (admin only)
func (h *ShelterHandler) Unverify(c *gin.Context) {
	shelterID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shelter ID")
		return
	}

	shelter, err := h.shelterService.Unverify(c.Request.Context(), shelterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shelter)
}
