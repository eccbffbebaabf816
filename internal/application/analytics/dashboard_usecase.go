// Package analytics contiene los casos de uso de lectura: el resumen del
// dashboard y el listado de productos con campos derivados (estado de stock y
// ubicación vigente).
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// DashboardUseCase construye el resumen del dashboard de un dueño.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). La línea de
// tiempo de operaciones se deriva por consulta desde las colecciones
// autoritativas; no hay copia materializada que pueda desfasarse.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el dueño indicado.
//
// Cuatro conteos más la línea de tiempo, fan-out en paralelo:
//  1. CountProducts          → TotalProducts
//  2. CountPendingReceipts   → PendingReceipts (estado ≠ "Received")
//  3. CountPendingDeliveries → PendingDeliveries (estado ≠ "Delivered")
//  4. CountTransfers         → InternalTransfers
//  5. RecentOperations       → Operations (fecha descendente)
func (uc *DashboardUseCase) GetSummary(ctx context.Context, adminID string) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type opsResult struct {
		ops []entity.Operation
		err error
	}

	productsCh := make(chan countResult, 1)
	receiptsCh := make(chan countResult, 1)
	deliveriesCh := make(chan countResult, 1)
	transfersCh := make(chan countResult, 1)
	opsCh := make(chan opsResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx, adminID)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountPendingReceipts(ctx, adminID)
		receiptsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountPendingDeliveries(ctx, adminID)
		deliveriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountTransfers(ctx, adminID)
		transfersCh <- countResult{n, err}
	}()
	go func() {
		ops, err := uc.analyticsRepo.RecentOperations(ctx, adminID)
		opsCh <- opsResult{ops, err}
	}()

	products := <-productsCh
	receipts := <-receiptsCh
	deliveries := <-deliveriesCh
	transfers := <-transfersCh
	ops := <-opsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", products.err)
	}
	if receipts.err != nil {
		return nil, fmt.Errorf("dashboard: recepciones pendientes: %w", receipts.err)
	}
	if deliveries.err != nil {
		return nil, fmt.Errorf("dashboard: entregas pendientes: %w", deliveries.err)
	}
	if transfers.err != nil {
		return nil, fmt.Errorf("dashboard: traslados internos: %w", transfers.err)
	}
	if ops.err != nil {
		return nil, fmt.Errorf("dashboard: operaciones recientes: %w", ops.err)
	}

	operations := make([]dto.OperationDTO, 0, len(ops.ops))
	for _, op := range ops.ops {
		operations = append(operations, dto.OperationDTO{
			Type:        op.Type,
			Reference:   op.Reference,
			ProductID:   op.ProductID,
			ProductName: op.ProductName,
			Quantity:    op.Quantity,
			Status:      op.Status,
			Date:        op.Date,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:     products.n,
		PendingReceipts:   receipts.n,
		PendingDeliveries: deliveries.n,
		InternalTransfers: transfers.n,
		Operations:        operations,
	}, nil
}
