package entity

import (
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// Receipt recepción de mercancía de un proveedor. Nace en Waiting; no muta
// el stock del producto (la cantidad se confirma con un ajuste si difiere).
type Receipt struct {
	ID        string
	AdminID   string
	ProductID string
	Reference string
	Supplier  string
	Quantity  int
	Status    domain.Status
	Date      time.Time
	Notes     string
	CreatedAt time.Time

	// Product producto relacionado, presente solo en listados.
	Product *Product
}
