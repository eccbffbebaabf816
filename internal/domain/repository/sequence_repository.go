package repository

import "context"

// Tipos de documento con numeración secuencial.
const (
	DocTypeReceipt    = "receipt"
	DocTypeAdjustment = "adjustment"
)

// SequenceRepository asigna números de secuencia para las referencias
// secuenciales anuales. Next es atómico: dos llamadas concurrentes para el
// mismo (dueño, tipo, año) nunca devuelven el mismo número.
type SequenceRepository interface {
	Next(ctx context.Context, adminID, docType string, year int) (int64, error)
}
