// Package service contains the business logic for the order service.
package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/schoolform/order-service/internal/catalog"
	"github.com/schoolform/order-service/internal/domain/model"
)

// ErrUnknownOption is returned when a selection event names an option label
// the product does not declare. The event is rejected outright so a line can
// never carry a price that does not belong to one of its options.
var ErrUnknownOption = errors.New("unknown option label")

// DerivationEngine resolves selection events against the catalog and computes
// order totals. It holds no mutable state; every method is a pure function of
// its inputs and the immutable catalog.
type DerivationEngine struct {
	catalog *catalog.Catalog
}

// NewDerivationEngine creates a derivation engine over the given catalog.
func NewDerivationEngine(cat *catalog.Catalog) *DerivationEngine {
	return &DerivationEngine{catalog: cat}
}

// ResolveSelection derives the order item for a single selection event.
//
// Grouped children always resolve to the sub-product's price with the
// sub-product name as the option. Choice lines resolve an explicit label to
// its option price, default to the first declared option when selected with
// no label, and skip option resolution entirely on a label-less deselect.
// Simple lines carry the product's fixed price.
func (e *DerivationEngine) ResolveSelection(lineID string, selected bool, optionLabel string) (model.OrderItem, error) {
	line, err := e.catalog.Line(lineID)
	if err != nil {
		return model.OrderItem{}, err
	}

	item := model.OrderItem{LineID: lineID, Selected: selected}

	if line.Sub != nil {
		item.Price = line.Sub.Price
		item.Option = line.Sub.Name
		return item, nil
	}

	p := line.Product
	switch p.Kind {
	case model.KindSimple:
		item.Price = p.Price
		item.Option = optionLabel
	case model.KindChoice:
		switch {
		case optionLabel != "":
			opt, ok := findOption(p, optionLabel)
			if !ok {
				return model.OrderItem{}, fmt.Errorf("%w: %q on line %q", ErrUnknownOption, optionLabel, lineID)
			}
			item.Price = opt.Price
			item.Option = optionLabel
			if !selected {
				// Deselected lines keep the caller's label rather than
				// clearing it, matching the paper form's observed behavior.
				log.Debug().
					Str("line_id", lineID).
					Str("option", optionLabel).
					Msg("Retaining option label on deselected line")
			}
		case selected:
			item.Price = p.Options[0].Price
			item.Option = p.Options[0].Label
		default:
			// Label-less deselect: no option resolution.
		}
	case model.KindGrouped:
		// Unreachable: the catalog rejects grouped headers in Line().
		return model.OrderItem{}, fmt.Errorf("%w: %q", catalog.ErrNotSelectable, lineID)
	}

	return item, nil
}

// ComputeTotal sums the price of every selected item. It always recomputes
// from the full store so the total can never drift from the live selection
// state. An empty or all-deselected store totals zero.
func (e *DerivationEngine) ComputeTotal(items map[string]model.OrderItem) int {
	total := 0
	for _, item := range items {
		if item.Selected {
			total += item.Price
		}
	}
	return total
}

func findOption(p *model.Product, label string) (model.ProductOption, bool) {
	for _, o := range p.Options {
		if o.Label == label {
			return o, true
		}
	}
	return model.ProductOption{}, false
}
