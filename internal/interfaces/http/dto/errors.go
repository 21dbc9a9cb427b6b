package dto

import "net/http"

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Domain codes are listed verbatim; the envelope keeps them as-is so
// clients can branch on the specific business failure.
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation and input errors -> 400 Bad Request
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusBadRequest,
	"INVALID_DATE":          http.StatusBadRequest,
	"INVALID_NAME":          http.StatusBadRequest,
	"INVALID_PRICE":         http.StatusBadRequest,
	"INVALID_STOCK":         http.StatusBadRequest,
	"INVALID_QUANTITY":      http.StatusBadRequest,
	"INVALID_TOTAL":         http.StatusBadRequest,
	"INVALID_EMAIL":         http.StatusBadRequest,
	"INVALID_PASSWORD":      http.StatusBadRequest,
	"INVALID_MOVEMENT_TYPE": http.StatusBadRequest,
	"EMPTY_SALE":            http.StatusBadRequest,
	"PASSWORD_HASH_ERROR":   http.StatusBadRequest,

	// Auth errors -> 401/403
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeForbidden:        http.StatusForbidden,
	"INVALID_CREDENTIALS":   http.StatusUnauthorized,
	"INVALID_REFRESH_TOKEN": http.StatusUnauthorized,
	"MAX_REFRESH_EXCEEDED":  http.StatusUnauthorized,

	// Resource errors -> 404/409
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeAlreadyExists:      http.StatusConflict,
	ErrCodeConflict:           http.StatusConflict,
	"PRODUCT_NOT_FOUND":       http.StatusNotFound,
	"CATEGORY_NOT_FOUND":      http.StatusNotFound,
	"SUPPLIER_NOT_FOUND":      http.StatusNotFound,
	"ROLE_NOT_FOUND":          http.StatusNotFound,
	"USER_ALREADY_EXISTS":     http.StatusConflict,
	"CATEGORY_ALREADY_EXISTS": http.StatusConflict,
	"SUPPLIER_ALREADY_EXISTS": http.StatusConflict,
	"ROLE_ALREADY_EXISTS":     http.StatusConflict,
	"ROLE_IN_USE":             http.StatusConflict,

	// Stock shortage is a bad request like the other sale input failures
	"INSUFFICIENT_STOCK": http.StatusBadRequest,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps bare domain sentinel codes to the
// standardized envelope format
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"ALREADY_EXISTS": ErrCodeAlreadyExists,
	"INVALID_INPUT":  ErrCodeInvalidInput,
	"UNAUTHORIZED":   ErrCodeUnauthorized,
	"FORBIDDEN":      ErrCodeForbidden,
	"BAD_REQUEST":    ErrCodeBadRequest,
	"INTERNAL_ERROR": ErrCodeInternal,
}

// NormalizeErrorCode converts a bare sentinel code to the standardized format.
// Specific domain codes and unknown codes are returned as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
