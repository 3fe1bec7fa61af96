package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/schoolform/order-service/internal/catalog"
	"github.com/schoolform/order-service/internal/client"
	"github.com/schoolform/order-service/internal/domain/model"
	"github.com/schoolform/order-service/internal/i18n"
	"github.com/schoolform/order-service/internal/metrics"
)

// ErrSubmitInProgress is returned when a submit arrives while the form is
// already Submitting. The in-flight attempt is left untouched.
var ErrSubmitInProgress = errors.New("submission already in progress")

// Submission phase names used in logs and metrics.
const (
	phaseRecord  = "record"
	phaseConfirm = "confirm"
)

// OrderArchiver persists recorded orders for auditing. Archiving is
// best-effort and must never influence the submission outcome.
type OrderArchiver interface {
	Archive(order *model.Order)
}

// Outcome is the terminal result of one submission attempt.
type Outcome struct {
	Status  model.SubmissionStatus
	Message string
	Order   *model.Order
}

// SubmissionWorkflow runs the two-phase submit: first the order is recorded
// with the spreadsheet collaborator, then a confirmation message is generated.
// The phases run strictly in sequence and the workflow short-circuits on the
// first failure; a second phase failure cannot unrecord the order.
type SubmissionWorkflow struct {
	catalog    *catalog.Catalog
	engine     *DerivationEngine
	sheet      client.SheetWriter
	textgen    client.ConfirmationGenerator
	translator *i18n.Translator
	archiver   OrderArchiver
}

// NewSubmissionWorkflow creates a submission workflow. archiver may be nil.
func NewSubmissionWorkflow(
	cat *catalog.Catalog,
	engine *DerivationEngine,
	sheet client.SheetWriter,
	textgen client.ConfirmationGenerator,
	translator *i18n.Translator,
	archiver OrderArchiver,
) *SubmissionWorkflow {
	return &SubmissionWorkflow{
		catalog:    cat,
		engine:     engine,
		sheet:      sheet,
		textgen:    textgen,
		translator: translator,
		archiver:   archiver,
	}
}

// Submit validates the form, snapshots it, and runs the two-phase workflow.
// The terminal status and message are written back to the form before return.
// Returns ErrSubmitInProgress without touching the form when a submission is
// already running.
func (w *SubmissionWorkflow) Submit(ctx context.Context, form *FormState, locale string) (Outcome, error) {
	// Pre-flight validation happens before the status machine moves, so a
	// rejected submit never passes through Submitting.
	if !form.Guardian().Complete() {
		msg := w.translator.Translate(i18n.ErrKeyValidationGuardian, locale)
		form.Fail(msg)
		metrics.RecordSubmission(string(model.StatusError))
		return Outcome{Status: model.StatusError, Message: msg}, nil
	}

	snapshot, guardian, ok := form.BeginSubmission()
	if !ok {
		return Outcome{}, ErrSubmitInProgress
	}

	total := w.engine.ComputeTotal(snapshot)
	if total == 0 {
		msg := w.translator.Translate(i18n.ErrKeyValidationEmpty, locale)
		form.FinishSubmission(model.StatusError, msg, "")
		metrics.RecordSubmission(string(model.StatusError))
		return Outcome{Status: model.StatusError, Message: msg}, nil
	}

	order := w.buildOrder(snapshot, guardian, total)

	outcome := w.run(ctx, form.ID(), order, locale)
	form.FinishSubmission(outcome.Status, outcome.Message, orderIDOf(outcome))
	metrics.RecordSubmission(string(outcome.Status))
	return outcome, nil
}

// buildOrder freezes the selected entries into the immutable submission
// payload, in catalog declaration order.
func (w *SubmissionWorkflow) buildOrder(snapshot map[string]model.OrderItem, guardian model.GuardianDetails, total int) *model.Order {
	items := make([]model.OrderItem, 0, len(snapshot))
	for _, lineID := range w.catalog.LineOrder() {
		if item, ok := snapshot[lineID]; ok && item.Selected {
			items = append(items, item)
		}
	}

	return &model.Order{
		ID:         uuid.NewString(),
		Items:      items,
		Guardian:   guardian,
		TotalPrice: total,
		CreatedAt:  time.Now(),
	}
}

// run executes the two remote phases against the snapshot.
func (w *SubmissionWorkflow) run(ctx context.Context, formID string, order *model.Order, locale string) Outcome {
	// Phase 1: record the order with the spreadsheet collaborator.
	start := time.Now()
	result, err := w.sheet.Append(ctx, order)
	metrics.RecordSubmissionPhase(phaseRecord, time.Since(start))

	if err != nil {
		key := i18n.ErrKeyNetwork
		if errors.Is(err, client.ErrSheetUnconfigured) {
			key = i18n.ErrKeySheetUnconfigured
		}
		log.Error().Err(err).
			Str("form_id", formID).
			Str("order_id", order.ID).
			Msg("Order recording failed")
		return Outcome{Status: model.StatusError, Message: w.translator.Translate(key, locale)}
	}
	if !result.OK {
		msg := fmt.Sprintf(w.translator.Translate(i18n.ErrKeySheetWrite, locale), result.Message)
		return Outcome{Status: model.StatusError, Message: msg}
	}

	if w.archiver != nil {
		w.archiver.Archive(order)
	}

	// Phase 2: generate the guardian-facing confirmation.
	start = time.Now()
	text, err := w.textgen.Generate(ctx, order)
	metrics.RecordSubmissionPhase(phaseConfirm, time.Since(start))

	switch {
	case err == nil:
		return Outcome{Status: model.StatusSuccess, Message: text, Order: order}
	case errors.Is(err, client.ErrTextGenUnavailable):
		// The order is recorded; degrade to the local confirmation template.
		log.Warn().Err(err).
			Str("form_id", formID).
			Str("order_id", order.ID).
			Msg("Confirmation generator unavailable, using fallback message")
		fallback := fmt.Sprintf(
			w.translator.Translate(i18n.SuccessKeyConfirmationFallback, locale),
			order.Guardian.ParentName, order.Guardian.ChildName, order.TotalPrice,
		)
		return Outcome{Status: model.StatusSuccess, Message: fallback, Order: order}
	default:
		// The order is already recorded; the guardian sees an error anyway.
		// A resubmit after this point writes a second row.
		log.Error().Err(err).
			Str("form_id", formID).
			Str("order_id", order.ID).
			Msg("Confirmation generation failed after order was recorded")
		return Outcome{Status: model.StatusError, Message: w.translator.Translate(i18n.ErrKeyConfirmationFailed, locale), Order: order}
	}
}

func orderIDOf(o Outcome) string {
	if o.Order != nil {
		return o.Order.ID
	}
	return ""
}
