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

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL
// (usable con pool o tx: el flujo de creación corre dentro del TxRunner).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de persistencia para entregas.
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste una nueva entrega.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, admin_id, product_id, reference, customer, quantity, status, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.AdminID, delivery.ProductID, delivery.Reference, delivery.Customer,
		delivery.Quantity, string(delivery.Status), delivery.Date, delivery.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega por ID. Devuelve (nil, nil) si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	query := `
		SELECT id, admin_id, product_id, reference, customer, quantity, status, date, created_at
		FROM deliveries WHERE id = $1`
	var d entity.Delivery
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.AdminID, &d.ProductID, &d.Reference, &d.Customer,
		&d.Quantity, &status, &d.Date, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	d.Status = domain.Status(status)
	return &d, nil
}

// ListByAdmin lista las entregas del dueño con su producto adjunto,
// fecha descendente.
func (r *DeliveryRepo) ListByAdmin(adminID string) ([]*entity.Delivery, error) {
	query := `
		SELECT d.id, d.admin_id, d.product_id, d.reference, d.customer, d.quantity, d.status, d.date, d.created_at,
		       p.id, p.name, p.sku, p.category
		FROM deliveries d
		JOIN products p ON p.id = d.product_id
		WHERE d.admin_id = $1
		ORDER BY d.date DESC, d.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, adminID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		var p entity.Product
		var status string
		if err := rows.Scan(
			&d.ID, &d.AdminID, &d.ProductID, &d.Reference, &d.Customer,
			&d.Quantity, &status, &d.Date, &d.CreatedAt,
			&p.ID, &p.Name, &p.SKU, &p.Category,
		); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		d.Status = domain.Status(status)
		d.Product = &p
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateStatus sobreescribe el estado de una entrega.
func (r *DeliveryRepo) UpdateStatus(id string, status domain.Status) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE deliveries SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update delivery status: %w", err)
	}
	return nil
}
