package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pawlig/backend/internal/application/adoption"
	"github.com/pawlig/backend/internal/domain/shared"
)

// AdoptionHandler handles adoption application endpoints
type AdoptionHandler struct {
	BaseHandler
	adoptionService *adoption.Service
}

// NewAdoptionHandler creates a new adoption handler
func NewAdoptionHandler(adoptionService *adoption.Service) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

// Apply submits an adoption application for a pet
func (h *AdoptionHandler) Apply(c *gin.Context) {
	adopterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req adoption.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	app, err := h.adoptionService.Apply(c.Request.Context(), adopterID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, app)
}

// ListOwn returns the authenticated adopter's applications
func (h *AdoptionHandler) ListOwn(c *gin.Context) {
	adopterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter adoption.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	apps, total, err := h.adoptionService.ListOwn(c.Request.Context(), adopterID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, apps, total, shared.PageRequest{Page: filter.Page, PageSize: filter.PageSize})
}

// ListQueue returns the application queue for the authenticated shelter
func (h *AdoptionHandler) ListQueue(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter adoption.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	apps, total, err := h.adoptionService.ListQueue(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, apps, total, shared.PageRequest{Page: filter.Page, PageSize: filter.PageSize})
}

// GetByID returns a single application visible to its adopter or shelter
func (h *AdoptionHandler) GetByID(c *gin.Context) {
	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	applicationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	app, err := h.adoptionService.GetByID(c.Request.Context(), callerID, applicationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, app)
}

// Approve approves a pending application, adopting out the pet and
// rejecting competing applications
func (h *AdoptionHandler) Approve(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	applicationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	app, err := h.adoptionService.Approve(c.Request.Context(), ownerID, applicationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, app)
}

// Reject rejects a pending application with a reason
func (h *AdoptionHandler) Reject(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	applicationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	var req adoption.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	app, err := h.adoptionService.Reject(c.Request.Context(), ownerID, applicationID, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, app)
}
