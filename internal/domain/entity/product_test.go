package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

func TestStockStatus_UmbralInclusivo(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		limit    int
		want     string
	}{
		{"por encima del límite", 11, 10, entity.StockStatusOK},
		{"exactamente en el límite", 10, 10, entity.StockStatusLow},
		{"por debajo del límite", 9, 10, entity.StockStatusLow},
		{"stock cero", 0, 5, entity.StockStatusLow},
		{"límite cero con stock", 1, 0, entity.StockStatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{Quantity: tc.quantity, LowStockLimit: tc.limit}
			assert.Equal(t, tc.want, p.StockStatus())
		})
	}
}

func TestStockValue_PrecioPorCantidad(t *testing.T) {
	o := entity.ProductOverview{
		UnitPrice: decimal.RequireFromString("19.90"),
		Stock:     3,
	}
	assert.True(t, decimal.RequireFromString("59.70").Equal(o.StockValue()),
		"el valor de stock debe ser precio unitario por cantidad")
}
