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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de persistencia para traslados.
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un nuevo traslado.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, admin_id, product_id, reference, from_location, to_location, quantity, status, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.AdminID, transfer.ProductID, transfer.Reference,
		transfer.FromLocation, transfer.ToLocation, transfer.Quantity,
		string(transfer.Status), transfer.Date, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID. Devuelve (nil, nil) si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	query := `
		SELECT id, admin_id, product_id, reference, from_location, to_location, quantity, status, date, created_at
		FROM transfers WHERE id = $1`
	var t entity.Transfer
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.AdminID, &t.ProductID, &t.Reference, &t.FromLocation, &t.ToLocation,
		&t.Quantity, &status, &t.Date, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	t.Status = domain.Status(status)
	return &t, nil
}

// ListByAdmin lista los traslados del dueño con su producto adjunto,
// fecha descendente.
func (r *TransferRepo) ListByAdmin(adminID string) ([]*entity.Transfer, error) {
	query := `
		SELECT t.id, t.admin_id, t.product_id, t.reference, t.from_location, t.to_location, t.quantity, t.status, t.date, t.created_at,
		       p.id, p.name, p.sku, p.category
		FROM transfers t
		JOIN products p ON p.id = t.product_id
		WHERE t.admin_id = $1
		ORDER BY t.date DESC, t.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, adminID)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		var p entity.Product
		var status string
		if err := rows.Scan(
			&t.ID, &t.AdminID, &t.ProductID, &t.Reference, &t.FromLocation, &t.ToLocation,
			&t.Quantity, &status, &t.Date, &t.CreatedAt,
			&p.ID, &p.Name, &p.SKU, &p.Category,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		t.Status = domain.Status(status)
		t.Product = &p
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateStatus sobreescribe el estado de un traslado.
func (r *TransferRepo) UpdateStatus(id string, status domain.Status) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE transfers SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	return nil
}
