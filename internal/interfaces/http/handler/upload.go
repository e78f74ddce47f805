package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pawlig/backend/internal/application/media"
)

// UploadHandler handles base64 image uploads
type UploadHandler struct {
	BaseHandler
	uploadService *media.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *media.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload decodes a base64 image, validates it and stores it, returning
// the public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	var req media.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.uploadService.Upload(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}
