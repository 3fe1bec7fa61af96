package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolform/order-service/internal/domain/model"
)

func testProducts() []model.Product {
	return []model.Product{
		{ID: "p01", Name: "notebook", Kind: model.KindSimple, Price: 140},
		{
			ID:   "p02",
			Name: "pencils",
			Kind: model.KindChoice,
			Options: []model.ProductOption{
				{Label: "2B", Price: 300},
				{Label: "6B", Price: 700},
			},
		},
		{
			ID:   "p03",
			Name: "art set",
			Kind: model.KindGrouped,
			SubProducts: []model.SubProduct{
				{ID: "p03-1", Name: "paint bag", Price: 2400},
				{ID: "p03-2", Name: "brush set", Price: 800},
			},
		},
	}
}

// TestNew tests catalog construction and validation.
func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		products []model.Product
		wantErr  string
	}{
		{
			name:     "valid catalog",
			products: testProducts(),
		},
		{
			name: "empty product id",
			products: []model.Product{
				{ID: "", Kind: model.KindSimple, Price: 100},
			},
			wantErr: "product id must not be empty",
		},
		{
			name: "duplicate line id",
			products: []model.Product{
				{ID: "p01", Kind: model.KindSimple, Price: 100},
				{ID: "p01", Kind: model.KindSimple, Price: 200},
			},
			wantErr: "duplicate line id",
		},
		{
			name: "duplicate sub-product id",
			products: []model.Product{
				{ID: "p01", Kind: model.KindSimple, Price: 100},
				{
					ID:   "p02",
					Kind: model.KindGrouped,
					SubProducts: []model.SubProduct{
						{ID: "p01", Name: "clash", Price: 50},
					},
				},
			},
			wantErr: "duplicate line id",
		},
		{
			name: "choice without options",
			products: []model.Product{
				{ID: "p01", Kind: model.KindChoice},
			},
			wantErr: "must declare at least one option",
		},
		{
			name: "choice with duplicate option labels",
			products: []model.Product{
				{
					ID:   "p01",
					Kind: model.KindChoice,
					Options: []model.ProductOption{
						{Label: "A", Price: 100},
						{Label: "A", Price: 200},
					},
				},
			},
			wantErr: "duplicate option label",
		},
		{
			name: "choice with empty option label",
			products: []model.Product{
				{
					ID:   "p01",
					Kind: model.KindChoice,
					Options: []model.ProductOption{
						{Label: "", Price: 100},
					},
				},
			},
			wantErr: "empty label",
		},
		{
			name: "simple with options",
			products: []model.Product{
				{
					ID:    "p01",
					Kind:  model.KindSimple,
					Price: 100,
					Options: []model.ProductOption{
						{Label: "A", Price: 100},
					},
				},
			},
			wantErr: "must not carry options",
		},
		{
			name: "grouped without sub-products",
			products: []model.Product{
				{ID: "p01", Kind: model.KindGrouped},
			},
			wantErr: "must declare at least one sub-product",
		},
		{
			name: "grouped with empty sub-product id",
			products: []model.Product{
				{
					ID:   "p01",
					Kind: model.KindGrouped,
					SubProducts: []model.SubProduct{
						{ID: "", Name: "x", Price: 50},
					},
				},
			},
			wantErr: "empty id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := New(tt.products)
			if tt.wantErr != "" {
				assert.Nil(t, cat)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.products), cat.Len())
		})
	}
}

// TestCatalog_Line tests line resolution.
func TestCatalog_Line(t *testing.T) {
	cat, err := New(testProducts())
	require.NoError(t, err)

	t.Run("simple product", func(t *testing.T) {
		line, err := cat.Line("p01")
		require.NoError(t, err)
		assert.Equal(t, "p01", line.Product.ID)
		assert.Nil(t, line.Sub)
	})

	t.Run("grouped child resolves with owner", func(t *testing.T) {
		line, err := cat.Line("p03-2")
		require.NoError(t, err)
		assert.Equal(t, "p03", line.Product.ID)
		require.NotNil(t, line.Sub)
		assert.Equal(t, "brush set", line.Sub.Name)
	})

	t.Run("grouped header is not selectable", func(t *testing.T) {
		_, err := cat.Line("p03")
		assert.ErrorIs(t, err, ErrNotSelectable)
	})

	t.Run("unknown line", func(t *testing.T) {
		_, err := cat.Line("p99")
		assert.ErrorIs(t, err, ErrLineNotFound)
	})
}

// TestCatalog_LineOrder tests that grouped children replace their header row.
func TestCatalog_LineOrder(t *testing.T) {
	cat, err := New(testProducts())
	require.NoError(t, err)

	assert.Equal(t, []string{"p01", "p02", "p03-1", "p03-2"}, cat.LineOrder())
}

// TestPriceDisplay tests display price formatting.
func TestPriceDisplay(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		want    string
		wantOK  bool
	}{
		{
			name:    "simple fixed price",
			product: model.Product{ID: "p01", Kind: model.KindSimple, Price: 500},
			want:    "500",
			wantOK:  true,
		},
		{
			name: "choice price range",
			product: model.Product{
				ID:   "p02",
				Kind: model.KindChoice,
				Options: []model.ProductOption{
					{Label: "A", Price: 700},
					{Label: "B", Price: 300},
				},
			},
			want:   "300~700",
			wantOK: true,
		},
		{
			name: "choice with single distinct price collapses",
			product: model.Product{
				ID:   "p04",
				Kind: model.KindChoice,
				Options: []model.ProductOption{
					{Label: "red", Price: 450},
					{Label: "blue", Price: 450},
				},
			},
			want:   "450",
			wantOK: true,
		},
		{
			name: "grouped header has no display price",
			product: model.Product{
				ID:   "p05",
				Kind: model.KindGrouped,
				SubProducts: []model.SubProduct{
					{ID: "p05-1", Name: "x", Price: 100},
				},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := PriceDisplay(tt.product)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, r.Display())
			}
		})
	}
}

// TestDefaultProducts ensures the built-in catalog passes validation.
func TestDefaultProducts(t *testing.T) {
	cat, err := New(DefaultProducts())
	require.NoError(t, err)
	assert.NotZero(t, cat.Len())
	assert.NotEmpty(t, cat.LineOrder())
}
