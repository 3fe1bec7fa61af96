package service

import (
	"context"
	"errors"

	"github.com/schoolform/order-service/internal/catalog"
	"github.com/schoolform/order-service/internal/domain/model"
	"github.com/schoolform/order-service/internal/metrics"
)

// ErrUnknownGuardianField is returned for a guardian update naming a field
// the form does not have.
var ErrUnknownGuardianField = errors.New("unknown guardian field")

// Guardian field names accepted by SetGuardian.
const (
	GuardianFieldParentName = "parent_name"
	GuardianFieldChildName  = "child_name"
)

// OrderFormService is the form lifecycle facade the HTTP layer talks to.
// This interface can be mocked for testing.
type OrderFormService interface {
	// Create opens a new empty form session.
	Create() FormView

	// Get returns the current state of a form.
	Get(id string) (FormView, error)

	// ApplySelection resolves and applies one selection event, returning the
	// updated form state.
	ApplySelection(id, lineID string, selected bool, option string) (FormView, error)

	// SetGuardian updates one guardian detail field.
	SetGuardian(id, field, value string) (FormView, error)

	// Submit runs the two-phase submission workflow to a terminal status.
	Submit(ctx context.Context, id, locale string) (FormView, error)

	// Reset clears the form back to its initial empty state.
	Reset(id string) (FormView, error)

	// Return moves an errored form back to Idle, keeping its data.
	Return(id string) (FormView, error)
}

// OrderFormServiceImpl implements OrderFormService over the in-memory form
// manager, the derivation engine, and the submission workflow.
type OrderFormServiceImpl struct {
	manager  *FormManager
	engine   *DerivationEngine
	workflow *SubmissionWorkflow
	catalog  *catalog.Catalog
}

// NewOrderFormService creates the form lifecycle service.
func NewOrderFormService(manager *FormManager, engine *DerivationEngine, workflow *SubmissionWorkflow, cat *catalog.Catalog) *OrderFormServiceImpl {
	return &OrderFormServiceImpl{
		manager:  manager,
		engine:   engine,
		workflow: workflow,
		catalog:  cat,
	}
}

// Create opens a new empty form session.
func (s *OrderFormServiceImpl) Create() FormView {
	form := s.manager.Create()
	return s.view(form)
}

// Get returns the current state of a form.
func (s *OrderFormServiceImpl) Get(id string) (FormView, error) {
	form, err := s.manager.Get(id)
	if err != nil {
		return FormView{}, err
	}
	return s.view(form), nil
}

// ApplySelection resolves one selection event against the catalog and applies
// the derived entry to the form's selection store.
func (s *OrderFormServiceImpl) ApplySelection(id, lineID string, selected bool, option string) (FormView, error) {
	form, err := s.manager.Get(id)
	if err != nil {
		return FormView{}, err
	}

	item, err := s.engine.ResolveSelection(lineID, selected, option)
	if err != nil {
		metrics.RecordSelection(s.lineKind(lineID), "rejected")
		return FormView{}, err
	}

	form.ApplyItem(item)
	metrics.RecordSelection(s.lineKind(lineID), "applied")
	return s.view(form), nil
}

// SetGuardian updates one guardian detail field.
func (s *OrderFormServiceImpl) SetGuardian(id, field, value string) (FormView, error) {
	form, err := s.manager.Get(id)
	if err != nil {
		return FormView{}, err
	}

	switch field {
	case GuardianFieldParentName:
		form.SetParentName(value)
	case GuardianFieldChildName:
		form.SetChildName(value)
	default:
		return FormView{}, ErrUnknownGuardianField
	}
	return s.view(form), nil
}

// Submit runs the submission workflow to a terminal status.
func (s *OrderFormServiceImpl) Submit(ctx context.Context, id, locale string) (FormView, error) {
	form, err := s.manager.Get(id)
	if err != nil {
		return FormView{}, err
	}

	if _, err := s.workflow.Submit(ctx, form, locale); err != nil {
		return FormView{}, err
	}
	return s.view(form), nil
}

// Reset clears the form back to its initial empty state.
func (s *OrderFormServiceImpl) Reset(id string) (FormView, error) {
	form, err := s.manager.Get(id)
	if err != nil {
		return FormView{}, err
	}
	form.Reset()
	return s.view(form), nil
}

// Return moves an errored form back to Idle, keeping its data.
func (s *OrderFormServiceImpl) Return(id string) (FormView, error) {
	form, err := s.manager.Get(id)
	if err != nil {
		return FormView{}, err
	}
	form.ReturnToForm()
	return s.view(form), nil
}

func (s *OrderFormServiceImpl) view(form *FormState) FormView {
	total := s.engine.ComputeTotal(form.Items())
	return form.View(s.catalog.LineOrder(), total)
}

// lineKind labels a line's product kind for metrics; unknown lines report as such.
func (s *OrderFormServiceImpl) lineKind(lineID string) string {
	line, err := s.catalog.Line(lineID)
	if err != nil {
		return "unknown"
	}
	if line.Sub != nil {
		return model.KindGrouped.String()
	}
	return line.Product.Kind.String()
}
