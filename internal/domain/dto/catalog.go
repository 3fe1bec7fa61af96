package dto

import (
	"github.com/schoolform/order-service/internal/domain/model"
)

// CatalogOption is one selectable option of a choice product.
// @Description Priced option of a choice product
type CatalogOption struct {
	Label string `json:"label" example:"2B"`
	Price int    `json:"price" example:"660"`
} // @name CatalogOption

// CatalogSubProduct is one selectable row under a grouped product.
// @Description Individually selectable sub-product of a grouped product
type CatalogSubProduct struct {
	LineID      string `json:"line_id" example:"p30-1"`
	Name        string `json:"name" example:"えのぐバッグ一式"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price" example:"2400"`
} // @name CatalogSubProduct

// CatalogProduct is the public view of one catalog entry, including the
// display price string shown on the form.
// @Description Catalog entry with display pricing
type CatalogProduct struct {
	LineID        string              `json:"line_id" example:"p03"`
	DisplayNumber string              `json:"display_number,omitempty" example:"3"`
	Name          string              `json:"name" example:"かきかたえんぴつ"`
	Description   string              `json:"description,omitempty"`
	Kind          model.ProductKind   `json:"kind" example:"choice"`
	// PriceDisplay is "500" for a single price or "300~700" for a range.
	// Empty for grouped headers, which price per sub-product.
	PriceDisplay string              `json:"price_display,omitempty" example:"660~720"`
	Options      []CatalogOption     `json:"options,omitempty"`
	SubProducts  []CatalogSubProduct `json:"sub_products,omitempty"`
} // @name CatalogProduct

// CatalogResponse is the full catalog in declaration order.
// @Description Product catalog
type CatalogResponse struct {
	Products []CatalogProduct `json:"products"`
} // @name CatalogResponse
