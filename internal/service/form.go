package service

import (
	"sync"
	"time"

	"github.com/schoolform/order-service/internal/domain/model"
)

// FormState owns all mutable state of one order form session: the selection
// store, guardian details, and the submission status machine. All mutation
// goes through its methods under a single mutex, so each form has exactly one
// writer at a time.
type FormState struct {
	mu sync.Mutex

	id         string
	items      map[string]model.OrderItem
	guardian   model.GuardianDetails
	status     model.SubmissionStatus
	message    string
	orderID    string
	createdAt  time.Time
	lastAccess time.Time
}

// NewFormState creates an empty idle form.
func NewFormState(id string) *FormState {
	now := time.Now()
	return &FormState{
		id:         id,
		items:      make(map[string]model.OrderItem),
		status:     model.StatusIdle,
		createdAt:  now,
		lastAccess: now,
	}
}

// ID returns the form's identifier.
func (f *FormState) ID() string {
	return f.id
}

// touch refreshes the session's last-access time. Caller must hold f.mu.
func (f *FormState) touch() {
	f.lastAccess = time.Now()
}

// LastAccess returns when the form was last read or written.
func (f *FormState) LastAccess() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAccess
}

// ApplyItem replaces the selection entry for the item's line.
// The entry is replaced whole; deselected entries stay in the store.
func (f *FormState) ApplyItem(item model.OrderItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.items[item.LineID] = item
}

// SetParentName sets the guardian's parent name field.
func (f *FormState) SetParentName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.guardian.ParentName = v
}

// SetChildName sets the guardian's child name field.
func (f *FormState) SetChildName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.guardian.ChildName = v
}

// Items returns a copy of the selection store.
func (f *FormState) Items() map[string]model.OrderItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]model.OrderItem, len(f.items))
	for k, v := range f.items {
		out[k] = v
	}
	return out
}

// Guardian returns the guardian details.
func (f *FormState) Guardian() model.GuardianDetails {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.guardian
}

// Status returns the submission status and its user-facing message.
func (f *FormState) Status() (model.SubmissionStatus, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.message
}

// OrderID returns the identifier assigned to the recorded order, if any.
func (f *FormState) OrderID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

// BeginSubmission transitions Idle (or a terminal status) to Submitting and
// snapshots the store for the workflow. Returns false without a snapshot when
// a submission is already in flight.
func (f *FormState) BeginSubmission() (snapshot map[string]model.OrderItem, guardian model.GuardianDetails, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == model.StatusSubmitting {
		return nil, model.GuardianDetails{}, false
	}
	f.touch()
	f.status = model.StatusSubmitting
	f.message = ""

	snapshot = make(map[string]model.OrderItem, len(f.items))
	for k, v := range f.items {
		snapshot[k] = v
	}
	return snapshot, f.guardian, true
}

// FinishSubmission records the terminal outcome of a submission attempt.
func (f *FormState) FinishSubmission(status model.SubmissionStatus, message, orderID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.status = status
	f.message = message
	if orderID != "" {
		f.orderID = orderID
	}
}

// Fail records a terminal error without a prior BeginSubmission transition,
// used for pre-flight validation failures.
func (f *FormState) Fail(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.status = model.StatusError
	f.message = message
}

// Reset clears the whole form back to its initial empty idle state.
func (f *FormState) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.items = make(map[string]model.OrderItem)
	f.guardian = model.GuardianDetails{}
	f.status = model.StatusIdle
	f.message = ""
	f.orderID = ""
}

// ReturnToForm moves an errored form back to Idle, keeping all entered data
// so the guardian can correct and resubmit.
func (f *FormState) ReturnToForm() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	if f.status == model.StatusError {
		f.status = model.StatusIdle
	}
}

// View renders a consistent snapshot of the form for API responses.
// Items are ordered by the given line order; lines without an entry are skipped.
func (f *FormState) View(lineOrder []string, total int) FormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()

	items := make([]model.OrderItem, 0, len(f.items))
	seen := make(map[string]bool, len(f.items))
	for _, id := range lineOrder {
		if item, ok := f.items[id]; ok {
			items = append(items, item)
			seen[id] = true
		}
	}
	// Entries for lines outside the known order (should not happen) go last.
	for id, item := range f.items {
		if !seen[id] {
			items = append(items, item)
		}
	}

	return FormView{
		FormID:     f.id,
		Items:      items,
		Guardian:   f.guardian,
		TotalPrice: total,
		Status:     f.status,
		Message:    f.message,
		OrderID:    f.orderID,
	}
}

// FormView is an immutable snapshot of a form's externally visible state.
type FormView struct {
	FormID     string
	Items      []model.OrderItem
	Guardian   model.GuardianDetails
	TotalPrice int
	Status     model.SubmissionStatus
	Message    string
	OrderID    string
}
