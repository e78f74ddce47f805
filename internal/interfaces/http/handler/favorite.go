package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pawlig/backend/internal/application/adoption"
	"github.com/pawlig/backend/internal/domain/shared"
)

// FavoriteHandler handles pet favorite endpoints
type FavoriteHandler struct {
	BaseHandler
	favoriteService *adoption.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService *adoption.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Toggle flips the favorite state for a pet and reports the new state
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	petID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pet ID")
		return
	}

	resp, err := h.favoriteService.Toggle(c.Request.Context(), userID, petID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListIDs returns the full favorited pet ID set for the authenticated user
func (h *FavoriteHandler) ListIDs(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ids, err := h.favoriteService.ListIDs(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"pet_ids": ids})
}

// List returns the authenticated user's favorited pets
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var listReq struct {
		Page     int `form:"page"`
		PageSize int `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BindError(c, err)
		return
	}

	page := shared.PageRequest{Page: listReq.Page, PageSize: listReq.PageSize}
	favorites, total, err := h.favoriteService.List(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, favorites, total, page)
}
