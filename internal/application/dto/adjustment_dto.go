package dto

import "time"

// CreateAdjustmentRequest entrada para registrar un ajuste tras un conteo
// físico. El delta se calcula contra el stock registrado del producto.
type CreateAdjustmentRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	CountedQuantity int    `json:"counted_quantity" validate:"min=0"`
	Reason          string `json:"reason" validate:"required"`
}

// AdjustmentResponse salida de un ajuste con su producto adjunto.
type AdjustmentResponse struct {
	ID        string      `json:"id"`
	AdminID   string      `json:"admin_id"`
	Reference string      `json:"reference"`
	Change    int         `json:"change"` // firmado: contado - registrado
	Reason    string      `json:"reason"`
	Date      time.Time   `json:"date"`
	Product   *ProductRef `json:"product,omitempty"`
}

// AdjustmentListResponse listado de ajustes del dueño, fecha descendente.
type AdjustmentListResponse struct {
	Items []AdjustmentResponse `json:"items"`
}
