// Package model defines the core domain entities for the order service.
package model

import (
	"encoding/json"
	"fmt"
)

// ProductKind discriminates how a catalog entry is selected and priced.
// Exactly one of Price, Options, or SubProducts is meaningful per kind.
type ProductKind int

const (
	// KindSimple is a fixed-price item toggled with a single checkbox.
	KindSimple ProductKind = iota
	// KindChoice is an item with mutually exclusive priced options.
	KindChoice
	// KindGrouped is a header row whose sub-products are selected individually.
	// The grouped row itself is never selectable.
	KindGrouped
)

// String returns the string representation of the product kind.
func (k ProductKind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindChoice:
		return "choice"
	case KindGrouped:
		return "grouped"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the kind as its string name.
func (k ProductKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a kind from its string name.
func (k *ProductKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "simple":
		*k = KindSimple
	case "choice":
		*k = KindChoice
	case "grouped":
		*k = KindGrouped
	default:
		return fmt.Errorf("unknown product kind %q", s)
	}
	return nil
}

// ProductOption is a single priced option of a Choice product.
type ProductOption struct {
	Label string `json:"label"`
	Price int    `json:"price"`
}

// SubProduct is a selectable child line of a Grouped product.
// Its ID is unique across the whole catalog and acts as an independent line.
type SubProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
}

// Product is an immutable catalog entry, created at process start and never mutated.
//
// @Description Catalog entry. Exactly one of price, options, or sub_products is
// @Description populated, consistent with kind.
type Product struct {
	// ID is the unique identifier within the catalog.
	ID string `json:"id" example:"p03"`
	// DisplayNumber is the human-facing ordinal label on the paper form.
	DisplayNumber string      `json:"display_number" example:"3"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Kind          ProductKind `json:"kind" swaggertype:"string" example:"choice"`
	// Price is meaningful only for simple products.
	Price int `json:"price,omitempty"`
	// Options is meaningful only for choice products; labels are unique per product.
	Options []ProductOption `json:"options,omitempty"`
	// SubProducts is meaningful only for grouped products.
	SubProducts []SubProduct `json:"sub_products,omitempty"`
}
