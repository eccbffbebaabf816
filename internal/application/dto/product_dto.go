package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity" validate:"min=0"`
	LowStockLimit int             `json:"low_stock_limit" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto. Quantity no se
// toca por esta vía: lo mueven entregas y ajustes.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	LowStockLimit *int             `json:"low_stock_limit" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	AdminID       string          `json:"admin_id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	LowStockLimit int             `json:"low_stock_limit"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductOverviewResponse fila del listado de productos con campos derivados.
type ProductOverviewResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Status   string `json:"status"` // "Low" | "OK"
	Location string `json:"location"`
}

// ProductOverviewListResponse listado de productos del dueño.
type ProductOverviewListResponse struct {
	Items []ProductOverviewResponse `json:"items"`
}
