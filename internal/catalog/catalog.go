// Package catalog holds the immutable product catalog and its line lookup index.
package catalog

import (
	"errors"
	"fmt"

	"github.com/schoolform/order-service/internal/domain/model"
)

var (
	// ErrLineNotFound is returned when a line identifier matches no catalog entry.
	ErrLineNotFound = errors.New("catalog line not found")
	// ErrNotSelectable is returned when the line identifier names a grouped
	// header row, which carries no selection state of its own.
	ErrNotSelectable = errors.New("grouped product is not directly selectable")
)

// Line is a resolved selectable unit: a top-level product, or a sub-product
// together with its owning grouped product.
type Line struct {
	// Product is the owning top-level product.
	Product *model.Product
	// Sub is set only when the line is a grouped child.
	Sub *model.SubProduct
}

// Catalog is the fixed ordered sequence of products plus a flat line index
// built once at load. Lookups never scan the nested structure.
type Catalog struct {
	products []model.Product
	lines    map[string]Line
}

// New builds a catalog from the given products, validating the §3-style
// structural invariants and precomputing the line index.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		lines:    make(map[string]Line),
	}
	copy(c.products, products)

	for i := range c.products {
		p := &c.products[i]
		if err := validateProduct(p); err != nil {
			return nil, err
		}

		if _, dup := c.lines[p.ID]; dup {
			return nil, fmt.Errorf("duplicate line id %q", p.ID)
		}

		switch p.Kind {
		case model.KindSimple, model.KindChoice:
			c.lines[p.ID] = Line{Product: p}
		case model.KindGrouped:
			// The header row is indexed so unknown-vs-unselectable stays
			// distinguishable, but it resolves to ErrNotSelectable.
			c.lines[p.ID] = Line{Product: p}
			for j := range p.SubProducts {
				sub := &p.SubProducts[j]
				if _, dup := c.lines[sub.ID]; dup {
					return nil, fmt.Errorf("duplicate line id %q", sub.ID)
				}
				c.lines[sub.ID] = Line{Product: p, Sub: sub}
			}
		}
	}

	return c, nil
}

// validateProduct checks that exactly the fields matching the kind are populated.
func validateProduct(p *model.Product) error {
	if p.ID == "" {
		return errors.New("product id must not be empty")
	}

	switch p.Kind {
	case model.KindSimple:
		if len(p.Options) > 0 || len(p.SubProducts) > 0 {
			return fmt.Errorf("simple product %q must not carry options or sub-products", p.ID)
		}
	case model.KindChoice:
		if len(p.Options) == 0 {
			return fmt.Errorf("choice product %q must declare at least one option", p.ID)
		}
		if p.Price != 0 || len(p.SubProducts) > 0 {
			return fmt.Errorf("choice product %q must only carry options", p.ID)
		}
		seen := make(map[string]bool, len(p.Options))
		for _, o := range p.Options {
			if o.Label == "" {
				return fmt.Errorf("choice product %q has an option with empty label", p.ID)
			}
			if seen[o.Label] {
				return fmt.Errorf("choice product %q has duplicate option label %q", p.ID, o.Label)
			}
			seen[o.Label] = true
		}
	case model.KindGrouped:
		if len(p.SubProducts) == 0 {
			return fmt.Errorf("grouped product %q must declare at least one sub-product", p.ID)
		}
		if p.Price != 0 || len(p.Options) > 0 {
			return fmt.Errorf("grouped product %q must only carry sub-products", p.ID)
		}
		for _, sub := range p.SubProducts {
			if sub.ID == "" {
				return fmt.Errorf("grouped product %q has a sub-product with empty id", p.ID)
			}
		}
	default:
		return fmt.Errorf("product %q has unknown kind %d", p.ID, p.Kind)
	}

	return nil
}

// Products returns the catalog entries in declaration order.
// The returned slice must not be mutated.
func (c *Catalog) Products() []model.Product {
	return c.products
}

// Len returns the number of top-level catalog entries.
func (c *Catalog) Len() int {
	return len(c.products)
}

// LineOrder returns every selectable line identifier in declaration order,
// with grouped children in place of their header row.
func (c *Catalog) LineOrder() []string {
	order := make([]string, 0, len(c.lines))
	for i := range c.products {
		p := &c.products[i]
		switch p.Kind {
		case model.KindSimple, model.KindChoice:
			order = append(order, p.ID)
		case model.KindGrouped:
			for _, sub := range p.SubProducts {
				order = append(order, sub.ID)
			}
		}
	}
	return order
}

// Line resolves a line identifier to its owning product (and sub-product for
// grouped children). Unknown identifiers yield ErrLineNotFound; a grouped
// header row yields ErrNotSelectable.
func (c *Catalog) Line(lineID string) (Line, error) {
	line, ok := c.lines[lineID]
	if !ok {
		return Line{}, fmt.Errorf("%w: %q", ErrLineNotFound, lineID)
	}
	if line.Product.Kind == model.KindGrouped && line.Sub == nil {
		return Line{}, fmt.Errorf("%w: %q", ErrNotSelectable, lineID)
	}
	return line, nil
}

// PriceRange is the display price of a catalog entry. A Choice product with a
// single distinct option price collapses to that value; with multiple distinct
// prices Min and Max hold the inclusive range. Grouped headers have no price.
type PriceRange struct {
	Min    int  `json:"min"`
	Max    int  `json:"max"`
	Single bool `json:"single"`
}

// Display formats the range as "500" or "300~700".
func (r PriceRange) Display() string {
	if r.Single {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d~%d", r.Min, r.Max)
}

// PriceDisplay computes the display price for a product. The second return is
// false for grouped headers, which defer pricing to their sub-products.
func PriceDisplay(p model.Product) (PriceRange, bool) {
	switch p.Kind {
	case model.KindSimple:
		return PriceRange{Min: p.Price, Max: p.Price, Single: true}, true
	case model.KindChoice:
		minPrice, maxPrice := p.Options[0].Price, p.Options[0].Price
		for _, o := range p.Options[1:] {
			if o.Price < minPrice {
				minPrice = o.Price
			}
			if o.Price > maxPrice {
				maxPrice = o.Price
			}
		}
		return PriceRange{Min: minPrice, Max: maxPrice, Single: minPrice == maxPrice}, true
	default:
		return PriceRange{}, false
	}
}
