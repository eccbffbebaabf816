package repository

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para Delivery (DIP).
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	// ListByAdmin lista entregas del dueño, producto adjunto, fecha descendente.
	ListByAdmin(adminID string) ([]*entity.Delivery, error)
	UpdateStatus(id string, status domain.Status) error
}
