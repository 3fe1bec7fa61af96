// Package client holds the HTTP clients for the two outbound collaborators:
// the spreadsheet endpoint that records submitted orders, and the
// text-generation API that produces the guardian-facing confirmation message.
package client

import (
	"context"
	"errors"

	"github.com/schoolform/order-service/internal/domain/model"
)

var (
	// ErrSheetUnconfigured is returned when no spreadsheet endpoint URL is set.
	ErrSheetUnconfigured = errors.New("sheet endpoint URL not configured")
	// ErrTextGenUnavailable is returned when the text-generation collaborator
	// cannot be reached or is not configured. Callers fall back to a locally
	// synthesized confirmation message.
	ErrTextGenUnavailable = errors.New("text generation unavailable")
	// ErrTextGenFailed is returned when the collaborator was reached but could
	// not produce a confirmation message.
	ErrTextGenFailed = errors.New("text generation failed")
)

// SheetResult carries the spreadsheet endpoint's verdict on a recorded order.
type SheetResult struct {
	// OK is true when the endpoint acknowledged the order.
	OK bool
	// Message is the endpoint's human-readable status message.
	Message string
}

// SheetWriter records a submitted order with the spreadsheet collaborator.
// This interface can be mocked for testing.
type SheetWriter interface {
	// Append sends the order to the spreadsheet endpoint. A non-nil error
	// means the endpoint could not be reached or answered garbage; an
	// application-level rejection comes back as SheetResult.OK == false.
	Append(ctx context.Context, order *model.Order) (SheetResult, error)
}

// ConfirmationGenerator produces the guardian-facing confirmation text for a
// recorded order. This interface can be mocked for testing.
type ConfirmationGenerator interface {
	// Generate returns the confirmation message for the order.
	// Returns ErrTextGenUnavailable when the collaborator is unreachable or
	// unconfigured, and ErrTextGenFailed when it answered but produced nothing.
	Generate(ctx context.Context, order *model.Order) (string, error)
}
