package entity

import "time"

// Tipos de operación de la línea de tiempo unificada.
const (
	OperationDelivery   = "delivery"
	OperationTransfer   = "transfer"
	OperationAdjustment = "adjustment"
)

// Operation entrada de la línea de tiempo del dashboard. Es un modelo de
// lectura: se deriva por consulta desde entregas, traslados y ajustes, nunca
// se persiste como colección propia.
type Operation struct {
	AdminID     string
	Type        string // delivery | transfer | adjustment
	Reference   string
	ProductID   string
	ProductName string
	Quantity    int // firmado en ajustes
	Status      string
	Date        time.Time
}
