package media

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Object Storage
// =============================================================================

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

var _ ObjectStorage = (*MockObjectStorage)(nil)

// =============================================================================
// Test Helper Functions
// =============================================================================

// minimal 1x1 PNG, enough for content-type sniffing
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89,
}

var jpegBytes = []byte{
	0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46,
	0x49, 0x46, 0x00, 0x01, 0x01, 0x00, 0x00, 0x01,
}

func newTestUploadService(storage *MockObjectStorage, maxSize int) *UploadService {
	return NewUploadService(storage, maxSize, zap.NewNop())
}

// =============================================================================
// UploadService Tests
// =============================================================================

func TestUploadService_Upload_Success(t *testing.T) {
	storage := new(MockObjectStorage)
	service := newTestUploadService(storage, 5*1024*1024)

	ctx := context.Background()
	encoded := base64.StdEncoding.EncodeToString(pngBytes)

	storage.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "pets/") && strings.HasSuffix(key, ".png")
	}), pngBytes, "image/png").Return(nil)
	storage.On("PublicURL", mock.AnythingOfType("string")).
		Return("https://cdn.pawlig.co/pets/test.png")

	result, err := service.Upload(ctx, UploadRequest{Image: encoded, Folder: "pets"})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.pawlig.co/pets/test.png", result.URL)
	assert.Equal(t, "image/png", result.ContentType)
	assert.Equal(t, len(pngBytes), result.Size)
	storage.AssertExpectations(t)
}

func TestUploadService_Upload_StripsDataURIPrefix(t *testing.T) {
	storage := new(MockObjectStorage)
	service := newTestUploadService(storage, 5*1024*1024)

	ctx := context.Background()
	encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegBytes)

	storage.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "products/") && strings.HasSuffix(key, ".jpg")
	}), jpegBytes, "image/jpeg").Return(nil)
	storage.On("PublicURL", mock.AnythingOfType("string")).
		Return("https://cdn.pawlig.co/products/test.jpg")

	result, err := service.Upload(ctx, UploadRequest{Image: encoded, Folder: "products"})

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", result.ContentType)
}

func TestUploadService_Upload_InvalidBase64(t *testing.T) {
	storage := new(MockObjectStorage)
	service := newTestUploadService(storage, 5*1024*1024)

	_, err := service.Upload(context.Background(), UploadRequest{Image: "not!!valid@@base64", Folder: "pets"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_IMAGE", domainErr.Code)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_Upload_RejectsNonImage(t *testing.T) {
	storage := new(MockObjectStorage)
	service := newTestUploadService(storage, 5*1024*1024)

	encoded := base64.StdEncoding.EncodeToString([]byte("%PDF-1.5 not a picture"))

	_, err := service.Upload(context.Background(), UploadRequest{Image: encoded, Folder: "pets"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", domainErr.Code)
}

func TestUploadService_Upload_TooLarge(t *testing.T) {
	storage := new(MockObjectStorage)
	service := newTestUploadService(storage, 16)

	encoded := base64.StdEncoding.EncodeToString(pngBytes)

	_, err := service.Upload(context.Background(), UploadRequest{Image: encoded, Folder: "avatars"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FILE_TOO_LARGE", domainErr.Code)
}

func TestUploadService_Upload_StorageFailure(t *testing.T) {
	storage := new(MockObjectStorage)
	service := newTestUploadService(storage, 5*1024*1024)

	ctx := context.Background()
	encoded := base64.StdEncoding.EncodeToString(pngBytes)

	storage.On("Upload", ctx, mock.AnythingOfType("string"), pngBytes, "image/png").
		Return(assert.AnError)

	_, err := service.Upload(ctx, UploadRequest{Image: encoded, Folder: "pets"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UPLOAD_FAILED", domainErr.Code)
}
