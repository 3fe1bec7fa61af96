package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolform/order-service/internal/catalog"
	"github.com/schoolform/order-service/internal/domain/dto"
	"github.com/schoolform/order-service/internal/i18n"
	"github.com/schoolform/order-service/internal/middleware"
	"github.com/schoolform/order-service/internal/service"
)

// Handler provides HTTP handlers for the form lifecycle routes.
type Handler struct {
	forms service.OrderFormService
}

// NewHandler creates a new Handler instance.
func NewHandler(forms service.OrderFormService) *Handler {
	return &Handler{forms: forms}
}

// toFormResponse converts a service view into the API response shape.
func toFormResponse(view service.FormView) dto.FormResponse {
	return dto.FormResponse{
		FormID:     view.FormID,
		Items:      view.Items,
		Guardian:   view.Guardian,
		TotalPrice: view.TotalPrice,
		Status:     view.Status,
		Message:    view.Message,
		OrderID:    view.OrderID,
	}
}

// respondFormError maps service errors to API error responses.
func (h *Handler) respondFormError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	switch {
	case errors.Is(err, service.ErrFormNotFound):
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeFormNotFound, i18n.ErrKeyFormNotFound, err)
	case errors.Is(err, catalog.ErrLineNotFound):
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeLineNotFound, i18n.ErrKeyLineNotFound, err)
	case errors.Is(err, catalog.ErrNotSelectable):
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeLineNotFound, i18n.ErrKeyLineNotFound, err)
	case errors.Is(err, service.ErrUnknownOption):
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeUnknownOption, i18n.ErrKeyUnknownOption, err)
	case errors.Is(err, service.ErrSubmitInProgress):
		builder.ErrorWithCode(http.StatusConflict, dto.ErrCodeSubmitInProgress, i18n.ErrKeySubmitInProgress, err)
	case errors.Is(err, service.ErrUnknownGuardianField):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// auditLog records a form action when the logging service is wired.
func auditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// CreateForm handles POST /api/forms requests.
//
// @Summary      Open a new order form
// @Description  Creates an empty form session and returns its identifier and initial state.
// @Tags         Forms
// @Produce      json
// @Success      201 {object} dto.SuccessResponse "Form created"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/forms [post]
func (h *Handler) CreateForm(c *gin.Context) {
	view := h.forms.Create()
	auditLog(c, "form_create", "Form session created", map[string]interface{}{
		"form_id": view.FormID,
	})
	NewResponseBuilder(c).SuccessCreated(toFormResponse(view))
}

// GetForm handles GET /api/forms/:id requests.
//
// @Summary      Get form state
// @Description  Returns the current selection store, guardian details, derived total, and submission status of a form.
// @Tags         Forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200 {object} dto.SuccessResponse "Current form state"
// @Failure      404 {object} dto.ErrorResponse "Form not found or expired"
// @Router       /api/forms/{id} [get]
func (h *Handler) GetForm(c *gin.Context) {
	view, err := h.forms.Get(c.Param("id"))
	if err != nil {
		h.respondFormError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(toFormResponse(view))
}

// UpdateSelection handles PUT /api/forms/:id/selections requests.
//
// @Summary      Select or deselect a catalog line
// @Description  Applies one selection event to the form. The derived entry replaces the line's previous state whole, and the total is recomputed from the full store.
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        request body dto.SelectionRequest true "Selection event"
// @Success      200 {object} dto.SuccessResponse "Updated form state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body or unknown option"
// @Failure      404 {object} dto.ErrorResponse "Form or catalog line not found"
// @Router       /api/forms/{id}/selections [put]
func (h *Handler) UpdateSelection(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SelectionRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	view, err := h.forms.ApplySelection(c.Param("id"), req.LineID, *req.Selected, req.Option)
	if err != nil {
		h.respondFormError(c, err)
		return
	}

	auditLog(c, "selection", "Selection applied", map[string]interface{}{
		"line_id":     req.LineID,
		"selected":    *req.Selected,
		"option":      req.Option,
		"total_price": view.TotalPrice,
	})
	builder.SuccessOK(toFormResponse(view))
}

// UpdateGuardian handles PUT /api/forms/:id/guardian requests.
//
// @Summary      Update a guardian detail field
// @Description  Sets the parent name or child name on the form. Values are stored as given; blank-field validation happens at submit time.
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        request body dto.GuardianFieldRequest true "Guardian field update"
// @Success      200 {object} dto.SuccessResponse "Updated form state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown field"
// @Failure      404 {object} dto.ErrorResponse "Form not found or expired"
// @Router       /api/forms/{id}/guardian [put]
func (h *Handler) UpdateGuardian(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.GuardianFieldRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	view, err := h.forms.SetGuardian(c.Param("id"), req.Field, req.Value)
	if err != nil {
		h.respondFormError(c, err)
		return
	}
	builder.SuccessOK(toFormResponse(view))
}

// SubmitForm handles POST /api/forms/:id/submit requests.
//
// @Summary      Submit the order
// @Description  Runs the two-phase submission: the order snapshot is recorded with the spreadsheet endpoint, then a confirmation message is generated. The response carries the terminal form state; a failed submission is reported in the form's status and message, not as an HTTP error.
// @Tags         Forms
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path string true "Form ID"
// @Success      200 {object} dto.SuccessResponse "Terminal form state (success or error)"
// @Failure      404 {object} dto.ErrorResponse "Form not found or expired"
// @Failure      409 {object} dto.ErrorResponse "A submission is already in progress"
// @Router       /api/forms/{id}/submit [post]
func (h *Handler) SubmitForm(c *gin.Context) {
	locale := i18n.GetLocale(c)

	view, err := h.forms.Submit(c.Request.Context(), c.Param("id"), locale)
	if err != nil {
		h.respondFormError(c, err)
		return
	}

	auditLog(c, "submit", "Order submitted", map[string]interface{}{
		"status":      string(view.Status),
		"total_price": view.TotalPrice,
		"order_id":    view.OrderID,
	})
	NewResponseBuilder(c).SuccessOK(toFormResponse(view))
}

// ResetForm handles POST /api/forms/:id/reset requests.
//
// @Summary      Reset the form
// @Description  Clears all selections, guardian details, and submission state, returning the form to its initial empty Idle state.
// @Tags         Forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200 {object} dto.SuccessResponse "Reset form state"
// @Failure      404 {object} dto.ErrorResponse "Form not found or expired"
// @Router       /api/forms/{id}/reset [post]
func (h *Handler) ResetForm(c *gin.Context) {
	view, err := h.forms.Reset(c.Param("id"))
	if err != nil {
		h.respondFormError(c, err)
		return
	}

	auditLog(c, "reset", "Form reset", nil)
	NewResponseBuilder(c).SuccessOK(toFormResponse(view))
}

// ReturnToForm handles POST /api/forms/:id/return requests.
//
// @Summary      Return to the form after an error
// @Description  Moves an errored form back to Idle while keeping all entered data, so the guardian can correct and resubmit.
// @Tags         Forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200 {object} dto.SuccessResponse "Editable form state"
// @Failure      404 {object} dto.ErrorResponse "Form not found or expired"
// @Router       /api/forms/{id}/return [post]
func (h *Handler) ReturnToForm(c *gin.Context) {
	view, err := h.forms.Return(c.Param("id"))
	if err != nil {
		h.respondFormError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(toFormResponse(view))
}
