// Package i18n provides internationalization support for the order service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyFormNotFound indicates an unknown or expired order form.
	ErrKeyFormNotFound = "error.form_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyLineNotFound indicates a selection event for an unknown catalog line.
	ErrKeyLineNotFound = "error.line_not_found"
	// ErrKeyUnknownOption indicates a selection event with an unknown option label.
	ErrKeyUnknownOption = "error.unknown_option"
	// ErrKeyValidationGuardian indicates missing guardian identity fields.
	ErrKeyValidationGuardian = "error.validation.guardian"
	// ErrKeyValidationEmpty indicates a submit attempt with nothing selected.
	ErrKeyValidationEmpty = "error.validation.empty"
	// ErrKeySubmitInProgress indicates a submit attempt while one is in flight.
	ErrKeySubmitInProgress = "error.submit_in_progress"
	// ErrKeyNetwork indicates a transport-level failure reaching a collaborator.
	ErrKeyNetwork = "error.network"
	// ErrKeySheetUnconfigured indicates no storage collaborator URL is configured.
	ErrKeySheetUnconfigured = "error.sheet_unconfigured"
	// ErrKeySheetWrite is the prefix for storage collaborator failures (takes the
	// collaborator message as a format argument).
	ErrKeySheetWrite = "error.sheet_write"
	// ErrKeyConfirmationFailed indicates the confirmation text could not be
	// generated after the order was already recorded.
	ErrKeyConfirmationFailed = "error.confirmation_failed"
)

// Success message translation keys.
const (
	// SuccessKeyConfirmationFallback is the locally synthesized confirmation
	// template (guardian name, child name, total as format arguments).
	SuccessKeyConfirmationFallback = "success.confirmation_fallback"
)
