package http

import (
	"github.com/gin-gonic/gin"

	"github.com/schoolform/order-service/internal/catalog"
	"github.com/schoolform/order-service/internal/domain/dto"
	"github.com/schoolform/order-service/internal/domain/model"
)

// CatalogHandler serves the read-only product catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
	// response is built once; the catalog never changes after load.
	response dto.CatalogResponse
}

// NewCatalogHandler creates a catalog handler with a pre-rendered response.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog:  cat,
		response: buildCatalogResponse(cat),
	}
}

// buildCatalogResponse converts the catalog into its API shape.
func buildCatalogResponse(cat *catalog.Catalog) dto.CatalogResponse {
	products := cat.Products()
	resp := dto.CatalogResponse{
		Products: make([]dto.CatalogProduct, 0, len(products)),
	}

	for _, p := range products {
		cp := dto.CatalogProduct{
			LineID:        p.ID,
			DisplayNumber: p.DisplayNumber,
			Name:          p.Name,
			Description:   p.Description,
			Kind:          p.Kind,
		}

		if priceRange, ok := catalog.PriceDisplay(p); ok {
			cp.PriceDisplay = priceRange.Display()
		}

		switch p.Kind {
		case model.KindChoice:
			cp.Options = make([]dto.CatalogOption, 0, len(p.Options))
			for _, o := range p.Options {
				cp.Options = append(cp.Options, dto.CatalogOption{
					Label: o.Label,
					Price: o.Price,
				})
			}
		case model.KindGrouped:
			cp.SubProducts = make([]dto.CatalogSubProduct, 0, len(p.SubProducts))
			for _, sub := range p.SubProducts {
				cp.SubProducts = append(cp.SubProducts, dto.CatalogSubProduct{
					LineID:      sub.ID,
					Name:        sub.Name,
					Description: sub.Description,
					Price:       sub.Price,
				})
			}
		}

		resp.Products = append(resp.Products, cp)
	}

	return resp
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      Get the product catalog
// @Description  Returns all catalog entries in declaration order, with display prices and per-kind option or sub-product detail.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Product catalog"
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.response)
}
