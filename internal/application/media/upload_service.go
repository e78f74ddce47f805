package media

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ObjectStorage abstracts the S3-compatible backend
type ObjectStorage interface {
	// Upload stores data under the given key
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL returns the publicly reachable URL for a stored key
	PublicURL(key string) string
}

// allowed image content types, keyed by sniffed MIME
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadService stores user-submitted images in object storage
type UploadService struct {
	storage ObjectStorage
	maxSize int
	logger  *zap.Logger
}

// NewUploadService creates a new UploadService. maxSize bounds the decoded
// image size in bytes.
func NewUploadService(storage ObjectStorage, maxSize int, logger *zap.Logger) *UploadService {
	return &UploadService{
		storage: storage,
		maxSize: maxSize,
		logger:  logger,
	}
}

// Upload decodes, validates and stores a base64 image, returning its public
// URL. The content type is sniffed from the decoded bytes, never trusted
// from the request.
func (s *UploadService) Upload(ctx context.Context, req UploadRequest) (*UploadResponse, error) {
	payload := req.Image
	if idx := strings.Index(payload, ";base64,"); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+len(";base64,"):]
	}

	// Cheap upper bound before decoding: 4 base64 chars per 3 bytes.
	if len(payload) > (s.maxSize/3+1)*4 {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "Image exceeds the maximum allowed size")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image is not valid base64")
	}
	if len(data) == 0 {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image is empty")
	}
	if len(data) > s.maxSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "Image exceeds the maximum allowed size")
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_MEDIA_TYPE", "Only JPEG, PNG, WebP and GIF images are accepted")
	}

	key := req.Folder + "/" + uuid.New().String() + ext
	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		s.logger.Error("Image upload failed", zap.String("key", key), zap.Error(err))
		return nil, shared.NewDomainError("UPLOAD_FAILED", "Could not store the image")
	}

	s.logger.Info("Image uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int("size", len(data)))

	return &UploadResponse{
		URL:         s.storage.PublicURL(key),
		Key:         key,
		ContentType: contentType,
		Size:        len(data),
	}, nil
}
