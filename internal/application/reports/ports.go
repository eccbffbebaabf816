package reports

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
)

// LedgerPDFGenerator renderiza el reporte de ledger como PDF.
// La implementación vive en infraestructura (Maroto).
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, owner dto.UserResponse, ledger *dto.LedgerDTO) ([]byte, error)
}
