package http

import (
	"github.com/gin-gonic/gin"

	"github.com/schoolform/order-service/internal/catalog"
	"github.com/schoolform/order-service/internal/service"
)

// FormRoutes handles form lifecycle and catalog route registration.
type FormRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
}

// NewFormRoutes creates a new FormRoutes instance.
func NewFormRoutes(forms service.OrderFormService, cat *catalog.Catalog) *FormRoutes {
	return &FormRoutes{
		handler:        NewHandler(forms),
		catalogHandler: NewCatalogHandler(cat),
	}
}

// RegisterRoutes registers the catalog and form lifecycle routes.
func (r *FormRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/catalog", r.catalogHandler.GetCatalog)

	rg.POST("/forms", r.handler.CreateForm)
	rg.GET("/forms/:id", r.handler.GetForm)
	rg.PUT("/forms/:id/selections", r.handler.UpdateSelection)
	rg.PUT("/forms/:id/guardian", r.handler.UpdateGuardian)
	rg.POST("/forms/:id/submit", r.handler.SubmitForm)
	rg.POST("/forms/:id/reset", r.handler.ResetForm)
	rg.POST("/forms/:id/return", r.handler.ReturnToForm)
}

// GetHandler returns the underlying form handler.
func (r *FormRoutes) GetHandler() *Handler {
	return r.handler
}
