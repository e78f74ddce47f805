package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pawlig/backend/internal/application/ai"
)

// RefineHandler proxies description refinement to the AI service
type RefineHandler struct {
	BaseHandler
	refineService *ai.RefineService
}

// NewRefineHandler creates a new refine handler
func NewRefineHandler(refineService *ai.RefineService) *RefineHandler {
	return &RefineHandler{refineService: refineService}
}

// Refine rewrites a pet or product description
func (h *RefineHandler) Refine(c *gin.Context) {
	var req ai.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.refineService.Refine(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
