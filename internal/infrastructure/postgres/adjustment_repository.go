package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación del puerto AdjustmentRepository sobre
// PostgreSQL (usable con pool o tx: la creación corre dentro del TxRunner).
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador de persistencia para ajustes.
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste un nuevo ajuste.
func (r *AdjustmentRepo) Create(adjustment *entity.Adjustment) error {
	query := `
		INSERT INTO adjustments (id, admin_id, product_id, reference, change, reason, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.AdminID, adjustment.ProductID, adjustment.Reference,
		adjustment.Change, adjustment.Reason, adjustment.Date, adjustment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// ListByAdmin lista los ajustes del dueño con su producto adjunto,
// fecha descendente.
func (r *AdjustmentRepo) ListByAdmin(adminID string) ([]*entity.Adjustment, error) {
	query := `
		SELECT a.id, a.admin_id, a.product_id, a.reference, a.change, a.reason, a.date, a.created_at,
		       p.id, p.name, p.sku, p.category
		FROM adjustments a
		JOIN products p ON p.id = a.product_id
		WHERE a.admin_id = $1
		ORDER BY a.date DESC, a.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, adminID)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjustment
	for rows.Next() {
		var a entity.Adjustment
		var p entity.Product
		if err := rows.Scan(
			&a.ID, &a.AdminID, &a.ProductID, &a.Reference, &a.Change, &a.Reason, &a.Date, &a.CreatedAt,
			&p.ID, &p.Name, &p.SKU, &p.Category,
		); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		a.Product = &p
		list = append(list, &a)
	}
	return list, rows.Err()
}
