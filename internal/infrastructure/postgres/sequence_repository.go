package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo asignador atómico de números de secuencia por
// (dueño, tipo de documento, año). Reemplaza el esquema de leer la última
// referencia e incrementarla, que permitía duplicados bajo concurrencia.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el asignador con el pool (o una tx).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next devuelve el siguiente número de la secuencia. El upsert con RETURNING
// es una sola sentencia: dos llamadas concurrentes nunca reciben el mismo
// número.
func (r *SequenceRepo) Next(ctx context.Context, adminID, docType string, year int) (int64, error) {
	query := `
		INSERT INTO reference_sequences (admin_id, doc_type, year, value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (admin_id, doc_type, year)
		DO UPDATE SET value = reference_sequences.value + 1
		RETURNING value`
	var n int64
	if err := r.q.QueryRow(ctx, query, adminID, docType, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %s/%d: %w", docType, year, err)
	}
	return n, nil
}
