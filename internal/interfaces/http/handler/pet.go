package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawlig/backend/internal/application/catalog"
	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/interfaces/http/middleware"
)

// PetHandler handles pet listing and management endpoints
type PetHandler struct {
	BaseHandler
	petService *catalog.PetService
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petService *catalog.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// viewerID returns the authenticated user's ID, or nil for anonymous
// requests. Public pet endpoints personalize the favorited flag with it.
func viewerID(c *gin.Context) *uuid.UUID {
	idStr := middleware.GetJWTUserID(c)
	if idStr == "" {
		return nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}
	return &id
}

// viewer returns the authenticated caller's identity and role, or nil for
// anonymous requests.
func viewer(c *gin.Context) *catalog.Viewer {
	id := viewerID(c)
	if id == nil {
		return nil
	}
	return &catalog.Viewer{UserID: *id, Role: identity.Role(middleware.GetJWTRole(c))}
}

// ListPublic returns the public adoptable pet listing
func (h *PetHandler) ListPublic(c *gin.Context) {
	var filter catalog.PetListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	pets, total, err := h.petService.ListPublic(c.Request.Context(), filter, viewerID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, pets, total, shared.PageRequest{Page: filter.Page, PageSize: filter.PageSize})
}

// ListOwn returns the authenticated shelter's own pets
func (h *PetHandler) ListOwn(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter catalog.PetListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	pets, total, err := h.petService.ListOwn(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, pets, total, shared.PageRequest{Page: filter.Page, PageSize: filter.PageSize})
}

// GetByID returns a single pet
func (h *PetHandler) GetByID(c *gin.Context) {
	petID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pet ID")
		return
	}

	pet, err := h.petService.GetByID(c.Request.Context(), petID, viewer(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pet)
}

// Create lists a new pet for adoption
func (h *PetHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req catalog.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	pet, err := h.petService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, pet)
}

// Update updates a pet's details
func (h *PetHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	petID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pet ID")
		return
	}

	var req catalog.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	pet, err := h.petService.Update(c.Request.Context(), ownerID, petID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pet)
}

// Delete removes a pet listing
func (h *PetHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	petID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pet ID")
		return
	}

	if err := h.petService.Delete(c.Request.Context(), ownerID, petID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// MarkAdopted marks a pet as adopted outside the platform
func (h *PetHandler) MarkAdopted(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	petID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pet ID")
		return
	}

	pet, err := h.petService.MarkAdopted(c.Request.Context(), ownerID, petID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pet)
}

// Relist returns a pet to the available state
func (h *PetHandler) Relist(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	petID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pet ID")
		return
	}

	pet, err := h.petService.Relist(c.Request.Context(), ownerID, petID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pet)
}
