package repository

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para Transfer (DIP).
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	// ListByAdmin lista traslados del dueño, producto adjunto, fecha descendente.
	ListByAdmin(adminID string) ([]*entity.Transfer, error)
	UpdateStatus(id string, status domain.Status) error
}
