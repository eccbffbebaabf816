package usecase

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que crear el documento y mutar el
// stock del producto sea una sola escritura atómica (Commit o Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		deliveryRepo repository.DeliveryRepository,
		adjustmentRepo repository.AdjustmentRepository,
	) error) error
}
