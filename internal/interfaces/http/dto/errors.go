package dto

import (
	"net/http"
	"strings"
)

// Error codes raised by the HTTP layer itself. Domain and application
// errors carry their own codes and are mapped below.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes. Codes not
// listed here fall through the prefix heuristics in GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	// 400 Bad Request
	ErrCodeBadRequest: http.StatusBadRequest,

	// 401 Unauthorized
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,

	// 403 Forbidden
	"FORBIDDEN":       http.StatusForbidden,
	"ACCOUNT_BLOCKED": http.StatusForbidden,

	// 404 Not Found
	"NOT_FOUND":         http.StatusNotFound,
	"PRODUCT_NOT_FOUND": http.StatusNotFound,

	// 409 Conflict
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"DUPLICATE_PRODUCT":    http.StatusConflict,
	"ROLE_UNCHANGED":       http.StatusConflict,

	// 413 / 415 uploads
	"FILE_TOO_LARGE":         http.StatusRequestEntityTooLarge,
	"UNSUPPORTED_MEDIA_TYPE": http.StatusUnsupportedMediaType,

	// 422 Unprocessable Entity: valid request, state forbids it
	"PET_NOT_AVAILABLE":   http.StatusUnprocessableEntity,
	"PRODUCT_UNAVAILABLE": http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":  http.StatusUnprocessableEntity,
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"NOT_VERIFIED":        http.StatusUnprocessableEntity,
	"NOT_BLOCKED":         http.StatusUnprocessableEntity,
	"REASON_REQUIRED":     http.StatusUnprocessableEntity,
	"TOO_MANY_PHOTOS":     http.StatusUnprocessableEntity,
	"TOO_MANY_IMAGES":     http.StatusUnprocessableEntity,

	// 502 upstream dependencies
	"UPSTREAM_UNAVAILABLE": http.StatusBadGateway,
	"UPLOAD_FAILED":        http.StatusBadGateway,

	// 500
	"INTERNAL_ERROR":      http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes starting with INVALID_ or ALREADY_ are treated as client
// errors; anything else is a 500.
func GetHTTPStatus(errorCode string) int {
	if status, ok := errorCodeHTTPStatus[errorCode]; ok {
		return status
	}
	if strings.HasPrefix(errorCode, "INVALID_") {
		return http.StatusBadRequest
	}
	if strings.HasPrefix(errorCode, "ALREADY_") {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
