// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// SelectionRequest represents the JSON request body for toggling a catalog line.
//
// LineID identifies the product row (or grouped sub-product row) being toggled.
// Option carries the chosen option label for choice products; it is ignored
// for simple lines and for deselections.
//
// @Description Request to select or deselect a single order line
// @Example {"line_id": "p03", "selected": true, "option": "2B"}
type SelectionRequest struct {
	// LineID is the catalog line being toggled.
	LineID string `json:"line_id" binding:"required" example:"p03"`
	// Selected is true to add the line to the order, false to remove it.
	Selected *bool `json:"selected" binding:"required" example:"true"`
	// Option is the chosen option label for choice products.
	Option string `json:"option,omitempty" example:"2B"`
} // @name SelectionRequest

// GuardianFieldRequest represents the JSON request body for updating one
// guardian detail field.
//
// @Description Request to update a guardian detail field
// @Example {"field": "parent_name", "value": "山田 太郎"}
type GuardianFieldRequest struct {
	// Field names the guardian detail being set: "parent_name" or "child_name".
	Field string `json:"field" binding:"required,oneof=parent_name child_name" example:"parent_name"`
	// Value is the new field value.
	Value string `json:"value" example:"山田 太郎"`
} // @name GuardianFieldRequest

// Guardian field names accepted by GuardianFieldRequest.
const (
	FieldParentName = "parent_name"
	FieldChildName  = "child_name"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingLineID is returned when line_id is absent.
	ErrMissingLineID = &ValidationError{
		Field:   "line_id",
		Message: "must not be empty",
	}
	// ErrMissingSelected is returned when selected is absent.
	ErrMissingSelected = &ValidationError{
		Field:   "selected",
		Message: "must be provided",
	}
	// ErrInvalidGuardianField is returned when field names an unknown guardian detail.
	ErrInvalidGuardianField = &ValidationError{
		Field:   "field",
		Message: "must be parent_name or child_name",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *SelectionRequest) Validate() error {
	if r.LineID == "" {
		return ErrMissingLineID
	}
	if r.Selected == nil {
		return ErrMissingSelected
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *GuardianFieldRequest) Validate() error {
	if r.Field != FieldParentName && r.Field != FieldChildName {
		return ErrInvalidGuardianField
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
