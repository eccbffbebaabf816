package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLocation ubicación asumida para productos sin traslados registrados.
const DefaultLocation = "Warehouse A"

// Estados derivados de stock para el listado de productos.
const (
	StockStatusLow = "Low"
	StockStatusOK  = "OK"
)

// Product artículo del inventario, escopado a un dueño (AdminID).
// Quantity es el contador canónico de stock: lo decrementan las entregas y lo
// reconcilian los ajustes. Nunca baja de cero.
type Product struct {
	ID            string
	AdminID       string
	Name          string
	SKU           string // único
	Category      string
	UnitPrice     decimal.Decimal
	Quantity      int
	LowStockLimit int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockStatus deriva el estado de stock: "Low" cuando Quantity <= LowStockLimit.
func (p *Product) StockStatus() string {
	if p.Quantity <= p.LowStockLimit {
		return StockStatusLow
	}
	return StockStatusOK
}

// ProductOverview fila del listado de productos con campos derivados:
// Status según el umbral de stock bajo y Location según el último traslado.
type ProductOverview struct {
	ProductID     string
	Name          string
	SKU           string
	Category      string
	UnitPrice     decimal.Decimal
	Stock         int
	LowStockLimit int
	Status        string // "Low" | "OK"
	Location      string
}

// StockValue valor del stock a precio unitario (para el reporte de ledger).
func (o ProductOverview) StockValue() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Stock)))
}
