package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de persistencia para recepciones.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste una nueva recepción.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, admin_id, product_id, reference, supplier, quantity, status, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.AdminID, receipt.ProductID, receipt.Reference, receipt.Supplier,
		receipt.Quantity, string(receipt.Status), receipt.Date, receipt.Notes, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción por ID. Devuelve (nil, nil) si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `
		SELECT id, admin_id, product_id, reference, supplier, quantity, status, date, notes, created_at
		FROM receipts WHERE id = $1`
	var rec entity.Receipt
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.AdminID, &rec.ProductID, &rec.Reference, &rec.Supplier,
		&rec.Quantity, &status, &rec.Date, &rec.Notes, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	rec.Status = domain.Status(status)
	return &rec, nil
}

// ListByAdmin lista las recepciones del dueño con su producto adjunto,
// fecha descendente.
func (r *ReceiptRepo) ListByAdmin(adminID string) ([]*entity.Receipt, error) {
	query := `
		SELECT r.id, r.admin_id, r.product_id, r.reference, r.supplier, r.quantity, r.status, r.date, r.notes, r.created_at,
		       p.id, p.name, p.sku, p.category
		FROM receipts r
		JOIN products p ON p.id = r.product_id
		WHERE r.admin_id = $1
		ORDER BY r.date DESC, r.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, adminID)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		var p entity.Product
		var status string
		if err := rows.Scan(
			&rec.ID, &rec.AdminID, &rec.ProductID, &rec.Reference, &rec.Supplier,
			&rec.Quantity, &status, &rec.Date, &rec.Notes, &rec.CreatedAt,
			&p.ID, &p.Name, &p.SKU, &p.Category,
		); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		rec.Status = domain.Status(status)
		rec.Product = &p
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// UpdateStatus sobreescribe el estado de una recepción.
func (r *ReceiptRepo) UpdateStatus(id string, status domain.Status) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE receipts SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update receipt status: %w", err)
	}
	return nil
}
