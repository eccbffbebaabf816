package entity

import (
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// Delivery entrega de mercancía a un cliente. Nace en Draft y su creación
// decrementa el stock del producto (acotado a cero).
type Delivery struct {
	ID        string
	AdminID   string
	ProductID string
	Reference string
	Customer  string
	Quantity  int
	Status    domain.Status
	Date      time.Time
	CreatedAt time.Time

	// Product producto relacionado, presente solo en listados.
	Product *Product
}
