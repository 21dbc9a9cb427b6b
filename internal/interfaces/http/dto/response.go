package dto

import (
	"github.com/stockdesk/backend/internal/domain/shared"
)

// Response represents a standard API response
type Response struct {
	Success bool               `json:"success"`
	Data    interface{}        `json:"data,omitempty"`
	Error   *ErrorInfo         `json:"error,omitempty"`
	Meta    *shared.Pagination `json:"meta,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string             `json:"code"`
	Message   string             `json:"message"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes a single invalid request field
type ValidationDetail struct {
	Property string `json:"property"`
	Message  string `json:"message"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewSuccessResponseWithMeta creates a success response with pagination meta
func NewSuccessResponseWithMeta(data interface{}, meta *shared.Pagination) Response {
	return Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// NewValidationErrorResponse creates a 400-style error response with per-field details
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      ErrCodeValidation,
			Message:   message,
			RequestID: requestID,
			Details:   details,
		},
	}
}

// ListRequest represents common list/pagination request parameters.
// Dates are DD/MM/YYYY strings; exact_date constrains the listing to a
// single day unless start_date/end_date override a bound.
type ListRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	ExactDate string `form:"exact_date"`
	Search    string `form:"search"`
}

// ToListQuery converts the bound request into the application-layer query
func (r ListRequest) ToListQuery() shared.ListQuery {
	return shared.ListQuery{
		Page:      r.Page,
		PageSize:  r.PageSize,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		ExactDate: r.ExactDate,
		Search:    r.Search,
	}
}

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
