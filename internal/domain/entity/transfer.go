package entity

import (
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// Transfer traslado interno entre ubicaciones. No muta stock: solo determina
// la ubicación vigente del producto (ToLocation del traslado más reciente).
type Transfer struct {
	ID           string
	AdminID      string
	ProductID    string
	Reference    string
	FromLocation string
	ToLocation   string
	Quantity     int
	Status       domain.Status
	Date         time.Time
	CreatedAt    time.Time

	// Product producto relacionado, presente solo en listados.
	Product *Product
}
