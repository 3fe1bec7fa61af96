package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schoolform/order-service/internal/domain/model"
)

// LoadFile reads a JSON catalog file (an array of products) and builds a
// validated catalog from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return New(products)
}
