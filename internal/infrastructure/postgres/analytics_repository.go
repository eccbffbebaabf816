package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y los campos
// derivados del listado de productos. Todas filtran por admin_id.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts total de productos del dueño.
func (r *AnalyticsRepo) CountProducts(ctx context.Context, adminID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE admin_id = $1`, adminID)
}

// CountPendingReceipts recepciones del dueño cuyo estado no es "Received".
func (r *AnalyticsRepo) CountPendingReceipts(ctx context.Context, adminID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM receipts WHERE admin_id = $1 AND status <> 'Received'`, adminID)
}

// CountPendingDeliveries entregas del dueño cuyo estado no es "Delivered".
func (r *AnalyticsRepo) CountPendingDeliveries(ctx context.Context, adminID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM deliveries WHERE admin_id = $1 AND status <> 'Delivered'`, adminID)
}

// CountTransfers total de traslados internos del dueño.
func (r *AnalyticsRepo) CountTransfers(ctx context.Context, adminID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM transfers WHERE admin_id = $1`, adminID)
}

func (r *AnalyticsRepo) count(ctx context.Context, query, adminID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, adminID).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics count: %w", err)
	}
	return n, nil
}

// RecentOperations línea de tiempo unificada del dueño: entregas, traslados y
// ajustes con el nombre del producto, fecha descendente. Se deriva con un
// UNION sobre las colecciones autoritativas; no existe una tabla de
// operaciones que mantener sincronizada.
func (r *AnalyticsRepo) RecentOperations(ctx context.Context, adminID string) ([]entity.Operation, error) {
	const query = `
	SELECT op.type, op.reference, op.product_id, p.name, op.quantity, op.status, op.date
	FROM (
	    SELECT 'delivery' AS type, reference, product_id, quantity, status, date, created_at
	    FROM deliveries WHERE admin_id = $1
	    UNION ALL
	    SELECT 'transfer', reference, product_id, quantity, status, date, created_at
	    FROM transfers WHERE admin_id = $1
	    UNION ALL
	    SELECT 'adjustment', reference, product_id, change, '', date, created_at
	    FROM adjustments WHERE admin_id = $1
	) op
	JOIN products p ON p.id = op.product_id
	ORDER BY op.date DESC, op.created_at DESC`

	rows, err := r.pool.Query(ctx, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecentOperations: %w", err)
	}
	defer rows.Close()

	var ops []entity.Operation
	for rows.Next() {
		op := entity.Operation{AdminID: adminID}
		if err := rows.Scan(&op.Type, &op.Reference, &op.ProductID, &op.ProductName,
			&op.Quantity, &op.Status, &op.Date); err != nil {
			return nil, fmt.Errorf("analytics.RecentOperations scan: %w", err)
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

// LatestLocations destino del traslado más reciente de cada producto del
// dueño, resuelto con una sola consulta DISTINCT ON en lugar de una consulta
// por producto.
func (r *AnalyticsRepo) LatestLocations(ctx context.Context, adminID string) (map[string]string, error) {
	const query = `
	SELECT DISTINCT ON (product_id) product_id, to_location
	FROM transfers
	WHERE admin_id = $1
	ORDER BY product_id, date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("analytics.LatestLocations: %w", err)
	}
	defer rows.Close()

	locations := make(map[string]string)
	for rows.Next() {
		var productID, toLocation string
		if err := rows.Scan(&productID, &toLocation); err != nil {
			return nil, fmt.Errorf("analytics.LatestLocations scan: %w", err)
		}
		locations[productID] = toLocation
	}
	return locations, rows.Err()
}
