package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// AdjustmentRepository define el puerto de persistencia para Adjustment (DIP).
// Los ajustes son append-only: no hay actualización ni transición de estado.
type AdjustmentRepository interface {
	Create(adjustment *entity.Adjustment) error
	// ListByAdmin lista ajustes del dueño, producto adjunto, fecha descendente.
	ListByAdmin(adminID string) ([]*entity.Adjustment, error)
}
