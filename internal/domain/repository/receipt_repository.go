package repository

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// ReceiptRepository define el puerto de persistencia para Receipt (DIP).
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	// ListByAdmin lista recepciones del dueño, producto adjunto, fecha descendente.
	ListByAdmin(adminID string) ([]*entity.Receipt, error)
	UpdateStatus(id string, status domain.Status) error
}
