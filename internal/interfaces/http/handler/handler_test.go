package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appai "github.com/pawlig/backend/internal/application/ai"
	"github.com/pawlig/backend/internal/application/media"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/pawlig/backend/internal/infrastructure/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRewriter struct {
	result string
	err    error
}

func (s *stubRewriter) Rewrite(_ context.Context, _ string) (string, error) {
	return s.result, s.err
}

func newTestStorage() *storage.StubObjectStorage {
	store := storage.NewStubObjectStorage()
	store.BaseURL = "https://cdn.test"
	return store
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBaseHandler_HandleError_DomainError(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		h.HandleError(c, shared.ErrNotFound)
	})

	w := performJSON(t, router, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestBaseHandler_HandleError_UnknownError(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		h.HandleError(c, assert.AnError)
	})

	w := performJSON(t, router, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestRefineHandler_Success(t *testing.T) {
	svc := appai.NewRefineService(&stubRewriter{result: "A playful dog who loves walks."}, zap.NewNop())
	h := NewRefineHandler(svc)

	router := gin.New()
	router.POST("/refine", h.Refine)

	w := performJSON(t, router, http.MethodPost, "/refine", gin.H{"description": "good dog"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A playful dog who loves walks.")
}

func TestRefineHandler_MissingBody(t *testing.T) {
	svc := appai.NewRefineService(&stubRewriter{result: "x"}, zap.NewNop())
	h := NewRefineHandler(svc)

	router := gin.New()
	router.POST("/refine", h.Refine)

	w := performJSON(t, router, http.MethodPost, "/refine", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestRefineHandler_UpstreamFailure(t *testing.T) {
	svc := appai.NewRefineService(&stubRewriter{err: assert.AnError}, zap.NewNop())
	h := NewRefineHandler(svc)

	router := gin.New()
	router.POST("/refine", h.Refine)

	w := performJSON(t, router, http.MethodPost, "/refine", gin.H{"description": "good dog"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "UPSTREAM_UNAVAILABLE")
}

func TestUploadHandler_Success(t *testing.T) {
	store := newTestStorage()
	svc := media.NewUploadService(store, 5*1024*1024, zap.NewNop())
	h := NewUploadHandler(svc)

	router := gin.New()
	router.POST("/uploads/images", h.Upload)

	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
		0, 0, 0, 13, 'I', 'H', 'D', 'R', 0, 0, 0, 1, 0, 0, 0, 1, 8, 6, 0, 0, 0}
	body := gin.H{
		"image":  base64.StdEncoding.EncodeToString(png),
		"folder": "pets",
	}

	w := performJSON(t, router, http.MethodPost, "/uploads/images", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "https://cdn.test/pets/")
}

func TestUploadHandler_RejectsNonImage(t *testing.T) {
	store := newTestStorage()
	svc := media.NewUploadService(store, 5*1024*1024, zap.NewNop())
	h := NewUploadHandler(svc)

	router := gin.New()
	router.POST("/uploads/images", h.Upload)

	body := gin.H{
		"image":  base64.StdEncoding.EncodeToString([]byte("%PDF-1.5 not an image")),
		"folder": "pets",
	}

	w := performJSON(t, router, http.MethodPost, "/uploads/images", body)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestUploadHandler_RejectsUnknownFolder(t *testing.T) {
	store := newTestStorage()
	svc := media.NewUploadService(store, 5*1024*1024, zap.NewNop())
	h := NewUploadHandler(svc)

	router := gin.New()
	router.POST("/uploads/images", h.Upload)

	body := gin.H{
		"image":  base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff}),
		"folder": "secrets",
	}

	w := performJSON(t, router, http.MethodPost, "/uploads/images", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
