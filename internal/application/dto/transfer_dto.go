package dto

import "time"

// CreateTransferRequest entrada para registrar un traslado interno.
// La fecha es el momento de creación; la referencia es TRF-<unix-ms>.
type CreateTransferRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	FromLocation string `json:"from_location" validate:"required"`
	ToLocation   string `json:"to_location" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

// TransferResponse salida de un traslado con su producto adjunto.
type TransferResponse struct {
	ID           string      `json:"id"`
	AdminID      string      `json:"admin_id"`
	Reference    string      `json:"reference"`
	FromLocation string      `json:"from_location"`
	ToLocation   string      `json:"to_location"`
	Quantity     int         `json:"quantity"`
	Status       string      `json:"status"`
	Date         time.Time   `json:"date"`
	Product      *ProductRef `json:"product,omitempty"`
}

// TransferListResponse listado de traslados del dueño, fecha descendente.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
}
