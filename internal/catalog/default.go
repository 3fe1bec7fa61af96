package catalog

import "github.com/schoolform/order-service/internal/domain/model"

// DefaultProducts returns the built-in first-grade supply catalog used when no
// catalog file is configured. Prices are in yen.
func DefaultProducts() []model.Product {
	return []model.Product{
		{
			ID:            "p01",
			DisplayNumber: "1",
			Name:          "れんらくちょう",
			Kind:          model.KindSimple,
			Price:         140,
		},
		{
			ID:            "p02",
			DisplayNumber: "2",
			Name:          "じゆうちょう",
			Kind:          model.KindSimple,
			Price:         180,
		},
		{
			ID:            "p03",
			DisplayNumber: "3",
			Name:          "かきかたえんぴつ",
			Description:   "12本入り",
			Kind:          model.KindChoice,
			Options: []model.ProductOption{
				{Label: "2B", Price: 660},
				{Label: "6B", Price: 720},
			},
		},
		{
			ID:            "p04",
			DisplayNumber: "4",
			Name:          "たいそうふく（はんそで）",
			Kind:          model.KindChoice,
			Options: []model.ProductOption{
				{Label: "110", Price: 1850},
				{Label: "120", Price: 1850},
				{Label: "130", Price: 1850},
			},
		},
		{
			ID:            "p05",
			DisplayNumber: "5",
			Name:          "クレヨン",
			Kind:          model.KindChoice,
			Options: []model.ProductOption{
				{Label: "12色", Price: 480},
				{Label: "16色", Price: 620},
			},
		},
		{
			ID:            "p06",
			DisplayNumber: "6",
			Name:          "さんすうセット",
			Kind:          model.KindSimple,
			Price:         2980,
		},
		{
			ID:            "p07",
			DisplayNumber: "7",
			Name:          "ねんどといた",
			Kind:          model.KindSimple,
			Price:         560,
		},
		{
			ID:            "p30",
			DisplayNumber: "30",
			Name:          "えのぐセット",
			Description:   "必要なものだけお選びください",
			Kind:          model.KindGrouped,
			SubProducts: []model.SubProduct{
				{ID: "p30-1", Name: "えのぐバッグ一式", Price: 2400},
				{ID: "p30-2", Name: "ふでセット", Price: 780},
				{ID: "p30-3", Name: "パレット", Price: 380},
			},
		},
	}
}

// Default builds the catalog from DefaultProducts. It panics on error because
// the built-in catalog is validated by tests and must always be well formed.
func Default() *Catalog {
	c, err := New(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return c
}
