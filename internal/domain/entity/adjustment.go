package entity

import "time"

// Adjustment ajuste de inventario tras un conteo físico.
// Change es el delta firmado (contado - stock registrado); al crearse, el
// stock del producto se sobreescribe con la cantidad contada.
type Adjustment struct {
	ID        string
	AdminID   string
	ProductID string
	Reference string
	Change    int
	Reason    string
	Date      time.Time
	CreatedAt time.Time

	// Product producto relacionado, presente solo en listados.
	Product *Product
}
