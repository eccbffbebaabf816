package dto

import "time"

// CreateReceiptRequest entrada para registrar una recepción. Si Reference
// viene vacío se genera uno secuencial (REC-<año>-NNN).
type CreateReceiptRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Supplier  string `json:"supplier" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"`
	Notes     string `json:"notes"`
	Reference string `json:"reference"`
}

// ReceiptResponse salida de una recepción con su producto adjunto.
type ReceiptResponse struct {
	ID        string      `json:"id"`
	AdminID   string      `json:"admin_id"`
	Reference string      `json:"reference"`
	Supplier  string      `json:"supplier"`
	Quantity  int         `json:"quantity"`
	Status    string      `json:"status"`
	Date      time.Time   `json:"date"`
	Notes     string      `json:"notes,omitempty"`
	Product   *ProductRef `json:"product,omitempty"`
}

// ReceiptListResponse listado de recepciones del dueño, fecha descendente.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
}
