package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRowDTO posición de stock de un producto para el reporte de ledger.
type LedgerRowDTO struct {
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Stock      int             `json:"stock"`
	StockValue decimal.Decimal `json:"stock_value"`
	Status     string          `json:"status"`
	Location   string          `json:"location"`
}

// LedgerDTO reporte de ledger del dueño: posiciones y valor total del stock.
type LedgerDTO struct {
	AdminID     string          `json:"admin_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Rows        []LedgerRowDTO  `json:"rows"`
}
