package repository

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// AnalyticsRepository consultas de solo lectura para el dashboard y los
// listados derivados. Todas están escopadas al dueño.
type AnalyticsRepository interface {
	// CountProducts total de productos del dueño.
	CountProducts(ctx context.Context, adminID string) (int, error)
	// CountPendingReceipts recepciones cuyo estado no es "Received".
	CountPendingReceipts(ctx context.Context, adminID string) (int, error)
	// CountPendingDeliveries entregas cuyo estado no es "Delivered".
	CountPendingDeliveries(ctx context.Context, adminID string) (int, error)
	// CountTransfers total de traslados internos del dueño.
	CountTransfers(ctx context.Context, adminID string) (int, error)
	// RecentOperations línea de tiempo unificada (entregas ∪ traslados ∪
	// ajustes) con producto adjunto, fecha descendente. Derivada por consulta:
	// no existe una colección de operaciones que pueda desfasarse.
	RecentOperations(ctx context.Context, adminID string) ([]entity.Operation, error)
	// LatestLocations mapa productID -> ToLocation del traslado más reciente
	// de cada producto del dueño. Los productos sin traslados no aparecen.
	LatestLocations(ctx context.Context, adminID string) (map[string]string, error)
}
