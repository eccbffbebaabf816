package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// OverviewUseCase arma el listado de productos del dueño con sus dos campos
// derivados: Status ("Low" cuando stock <= umbral) y Location (destino del
// traslado más reciente, "Warehouse A" si no hay ninguno).
type OverviewUseCase struct {
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(productRepo repository.ProductRepository, analyticsRepo repository.AnalyticsRepository) *OverviewUseCase {
	return &OverviewUseCase{productRepo: productRepo, analyticsRepo: analyticsRepo}
}

// Overview devuelve las filas derivadas de todos los productos del dueño.
// Las ubicaciones se resuelven con una sola consulta agrupada, no con una
// consulta por producto.
func (uc *OverviewUseCase) Overview(ctx context.Context, adminID string) ([]entity.ProductOverview, error) {
	products, err := uc.productRepo.ListByAdmin(adminID)
	if err != nil {
		return nil, fmt.Errorf("overview: listar productos: %w", err)
	}
	locations, err := uc.analyticsRepo.LatestLocations(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("overview: ubicaciones recientes: %w", err)
	}

	rows := make([]entity.ProductOverview, 0, len(products))
	for _, p := range products {
		location, ok := locations[p.ID]
		if !ok || location == "" {
			location = entity.DefaultLocation
		}
		rows = append(rows, entity.ProductOverview{
			ProductID:     p.ID,
			Name:          p.Name,
			SKU:           p.SKU,
			Category:      p.Category,
			UnitPrice:     p.UnitPrice,
			Stock:         p.Quantity,
			LowStockLimit: p.LowStockLimit,
			Status:        p.StockStatus(),
			Location:      location,
		})
	}
	return rows, nil
}

// List versión DTO del overview para el endpoint de listado de productos.
func (uc *OverviewUseCase) List(ctx context.Context, adminID string) (*dto.ProductOverviewListResponse, error) {
	rows, err := uc.Overview(ctx, adminID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductOverviewResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ProductOverviewResponse{
			ID:       r.ProductID,
			Name:     r.Name,
			SKU:      r.SKU,
			Category: r.Category,
			Stock:    r.Stock,
			Status:   r.Status,
			Location: r.Location,
		})
	}
	return &dto.ProductOverviewListResponse{Items: items}, nil
}
