package dto

import "time"

// CreateDeliveryRequest entrada para registrar una entrega. Todos los campos
// son obligatorios; la referencia se genera por timestamp (DEL-<unix-ms>).
type CreateDeliveryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Customer  string `json:"customer" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"`
}

// DeliveryResponse salida de una entrega con su producto adjunto.
type DeliveryResponse struct {
	ID        string      `json:"id"`
	AdminID   string      `json:"admin_id"`
	Reference string      `json:"reference"`
	Customer  string      `json:"customer"`
	Quantity  int         `json:"quantity"`
	Status    string      `json:"status"`
	Date      time.Time   `json:"date"`
	Product   *ProductRef `json:"product,omitempty"`
}

// DeliveryListResponse listado de entregas del dueño, fecha descendente.
type DeliveryListResponse struct {
	Items []DeliveryResponse `json:"items"`
}
