package dto

import "time"

// OperationDTO entrada de la línea de tiempo del dashboard.
type OperationDTO struct {
	Type        string    `json:"type"` // delivery | transfer | adjustment
	Reference   string    `json:"reference"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status,omitempty"`
	Date        time.Time `json:"date"`
}

// DashboardSummaryDTO resumen del dashboard de un dueño.
type DashboardSummaryDTO struct {
	TotalProducts     int            `json:"total_products"`
	PendingReceipts   int            `json:"pending_receipts"`
	PendingDeliveries int            `json:"pending_deliveries"`
	InternalTransfers int            `json:"internal_transfers"`
	Operations        []OperationDTO `json:"operations"`
}
