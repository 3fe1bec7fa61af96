package model

import (
	"strings"
	"time"
)

// OrderItem is the selection state of a single catalog line.
// Every selection event replaces the whole entry; it is never partially updated.
// The price is a snapshot resolved at selection time, not a live recompute.
//
// JSON field names follow the storage collaborator's wire contract.
type OrderItem struct {
	// LineID references the originating product or sub-product.
	LineID   string `json:"lineId"`
	Selected bool   `json:"selected"`
	Price    int    `json:"price"`
	// Option records the active option label for choice lines, or the
	// sub-product name for grouped children.
	Option string `json:"option,omitempty"`
}

// GuardianDetails identifies who is placing the order.
// Both fields are required non-blank at submission time; no other validation applies.
type GuardianDetails struct {
	ParentName string `json:"parentName"`
	ChildName  string `json:"childName"`
}

// Complete reports whether both guardian fields are non-blank after trimming.
func (g GuardianDetails) Complete() bool {
	return strings.TrimSpace(g.ParentName) != "" && strings.TrimSpace(g.ChildName) != ""
}

// Order is the immutable submission payload built at submit time.
// Items contains only entries with Selected set.
type Order struct {
	ID         string          `json:"orderId,omitempty"`
	Items      []OrderItem     `json:"items"`
	Guardian   GuardianDetails `json:"guardianDetails"`
	TotalPrice int             `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt,omitempty"`
}

// SubmissionStatus is the state of the submission workflow.
// Exactly one status is active per form at a time.
type SubmissionStatus string

const (
	// StatusIdle means the form is editable and no submission is in flight.
	StatusIdle SubmissionStatus = "idle"
	// StatusSubmitting means the two-phase remote write is in progress.
	StatusSubmitting SubmissionStatus = "submitting"
	// StatusSuccess is terminal for the current order; the confirmation message is set.
	StatusSuccess SubmissionStatus = "success"
	// StatusError is terminal for the current attempt; the error message is set.
	StatusError SubmissionStatus = "error"
)

// Terminal reports whether the status ends the current submission attempt.
func (s SubmissionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}
