package ai

import (
	"context"
	"testing"

	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Text Rewriter
// =============================================================================

// MockTextRewriter is a mock implementation of TextRewriter
type MockTextRewriter struct {
	mock.Mock
}

func (m *MockTextRewriter) Rewrite(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

var _ TextRewriter = (*MockTextRewriter)(nil)

// =============================================================================
// RefineService Tests
// =============================================================================

func TestRefineService_Refine_Success(t *testing.T) {
	rewriter := new(MockTextRewriter)
	service := NewRefineService(rewriter, zap.NewNop())

	ctx := context.Background()
	rewriter.On("Rewrite", ctx, "good dog, likes walks").
		Return("Rocky is a friendly, energetic dog who loves long walks.", nil)

	result, err := service.Refine(ctx, RefineRequest{Description: "  good dog, likes walks  "})

	require.NoError(t, err)
	assert.Equal(t, "Rocky is a friendly, energetic dog who loves long walks.", result.Refined)
	rewriter.AssertExpectations(t)
}

func TestRefineService_Refine_EmptyAfterTrim(t *testing.T) {
	rewriter := new(MockTextRewriter)
	service := NewRefineService(rewriter, zap.NewNop())

	_, err := service.Refine(context.Background(), RefineRequest{Description: "   "})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	rewriter.AssertNotCalled(t, "Rewrite", mock.Anything, mock.Anything)
}

func TestRefineService_Refine_UpstreamFailure(t *testing.T) {
	rewriter := new(MockTextRewriter)
	service := NewRefineService(rewriter, zap.NewNop())

	ctx := context.Background()
	rewriter.On("Rewrite", ctx, "good dog").Return("", assert.AnError)

	_, err := service.Refine(ctx, RefineRequest{Description: "good dog"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", domainErr.Code)
}
