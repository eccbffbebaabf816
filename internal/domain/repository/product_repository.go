package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByAdminAndSKU(adminID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity sobreescribe solo el contador de stock (usado por los
	// flujos de entrega y ajuste dentro de una transacción).
	UpdateQuantity(productID string, quantity int) error
	// ListByAdmin lista los productos del dueño ordenados por nombre.
	ListByAdmin(adminID string) ([]*entity.Product, error)
}
