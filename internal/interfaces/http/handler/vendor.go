package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pawlig/backend/internal/application/partner"
	"github.com/pawlig/backend/internal/domain/shared"
)

// VendorHandler handles vendor profile endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *partner.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *partner.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// List returns the public vendor directory. Only verified vendors are
// listed regardless of the query string.
func (h *VendorHandler) List(c *gin.Context) {
	var filter partner.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	verified := true
	filter.Verified = &verified

	vendors, total, err := h.vendorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, vendors, total, shared.PageRequest{Page: filter.Page, PageSize: filter.PageSize})
}

// ListAdmin returns all vendors, honoring the verified query filter
func (h *VendorHandler) ListAdmin(c *gin.Context) {
	var filter partner.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	vendors, total, err := h.vendorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, vendors, total, shared.PageRequest{Page: filter.Page, PageSize: filter.PageSize})
}

// GetByID returns a vendor's public profile
func (h *VendorHandler) GetByID(c *gin.Context) {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetByID(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	// Unverified vendors are not publicly visible
	if !vendor.Verified {
		h.NotFound(c, "Vendor not found")
		return
	}

	h.Success(c, vendor)
}

// GetOwn returns the authenticated owner's vendor profile
func (h *VendorHandler) GetOwn(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	vendor, err := h.vendorService.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}

// UpdateOwn updates the authenticated owner's vendor profile
func (h *VendorHandler) UpdateOwn(c *gin.Context) {
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

	vendor, err := h.vendorService.UpdateOwn(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}

// SetLogo sets the vendor's logo image
func (h *VendorHandler) SetLogo(c *gin.Context) {
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

	vendor, err := h.vendorService.SetLogo(c.Request.Context(), ownerID, req.LogoURL)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}

// Verify marks a vendor as verified (admin only)
func (h *VendorHandler) Verify(c *gin.Context) {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.Verify(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}

// Unverify removes a vendor's verified mark (admin only)
func (h *VendorHandler) Unverify(c *gin.Context) {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.Unverify(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}
