package dto

import (
	"net/http"
	"time"

	"github.com/schoolform/order-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeFormNotFound indicates an unknown or expired form session.
	ErrCodeFormNotFound = "form_not_found"
	// ErrCodeLineNotFound indicates an unknown catalog line.
	ErrCodeLineNotFound = "line_not_found"
	// ErrCodeUnknownOption indicates an unknown option label for a choice product.
	ErrCodeUnknownOption = "unknown_option"
	// ErrCodeValidation indicates the order failed submission validation.
	ErrCodeValidation = "validation_failed"
	// ErrCodeSubmitInProgress indicates a submission is already running.
	ErrCodeSubmitInProgress = "submit_in_progress"
	// ErrCodeSubmissionFailed indicates the submission workflow ended in error.
	ErrCodeSubmissionFailed = "submission_failed"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (FormResponse for form endpoints)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"line_not_found"`
	Message string `json:"message,omitempty" example:"指定された商品が見つかりません。"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// FormResponse is the public view of a form session returned by every form
// lifecycle endpoint.
// @Description Current state of an order form session
type FormResponse struct {
	// FormID identifies the form session.
	FormID string `json:"form_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Items lists the current per-line selection state in catalog order.
	Items []model.OrderItem `json:"items"`
	// Guardian holds the guardian detail fields entered so far.
	Guardian model.GuardianDetails `json:"guardian"`
	// TotalPrice is the derived total of all selected lines, in yen.
	TotalPrice int `json:"total_price" example:"800"`
	// Status is the submission status: idle, submitting, success, or error.
	Status model.SubmissionStatus `json:"status" example:"idle"`
	// Message carries the user-facing outcome text after a submission:
	// the confirmation text on success, the failure message on error.
	Message string `json:"message,omitempty"`
	// OrderID is set once the order has been recorded.
	OrderID string `json:"order_id,omitempty" example:"ord-7f3a"`
} // @name FormResponse
