package ai

import (
	"context"
	"strings"

	"github.com/pawlig/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TextRewriter abstracts the external description-rewriting service
type TextRewriter interface {
	Rewrite(ctx context.Context, text string) (string, error)
}

// RefineRequest carries the raw description to improve
type RefineRequest struct {
	Description string `json:"description" binding:"required,max=2000"`
}

// RefineResponse returns the rewritten description
type RefineResponse struct {
	Refined string `json:"refined"`
}

// RefineService proxies pet and product descriptions to the external
// rewriting service
type RefineService struct {
	rewriter TextRewriter
	logger   *zap.Logger
}

// NewRefineService creates a new RefineService
func NewRefineService(rewriter TextRewriter, logger *zap.Logger) *RefineService {
	return &RefineService{
		rewriter: rewriter,
		logger:   logger,
	}
}

// Refine rewrites a description. Upstream failures surface as
// UPSTREAM_UNAVAILABLE so the handler can answer 502.
func (s *RefineService) Refine(ctx context.Context, req RefineRequest) (*RefineResponse, error) {
	text := strings.TrimSpace(req.Description)
	if text == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Description cannot be empty")
	}

	refined, err := s.rewriter.Rewrite(ctx, text)
	if err != nil {
		s.logger.Warn("Description rewrite failed", zap.Error(err))
		return nil, shared.NewDomainError("UPSTREAM_UNAVAILABLE", "The description service is currently unavailable")
	}

	return &RefineResponse{Refined: refined}, nil
}
