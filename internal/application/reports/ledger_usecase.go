// Package reports genera el reporte de ledger: la posición de stock de cada
// producto del dueño valorada a precio unitario, en JSON o PDF.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// LedgerUseCase arma el reporte de ledger a partir del overview de productos.
type LedgerUseCase struct {
	overviewUC   *analytics.OverviewUseCase
	userRepo     repository.UserRepository
	pdfGenerator LedgerPDFGenerator
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	overviewUC *analytics.OverviewUseCase,
	userRepo repository.UserRepository,
	pdfGenerator LedgerPDFGenerator,
) *LedgerUseCase {
	return &LedgerUseCase{overviewUC: overviewUC, userRepo: userRepo, pdfGenerator: pdfGenerator}
}

// Build arma el LedgerDTO del dueño: una fila por producto más el valor total.
func (uc *LedgerUseCase) Build(ctx context.Context, adminID string) (*dto.LedgerDTO, error) {
	rows, err := uc.overviewUC.Overview(ctx, adminID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LedgerRowDTO, 0, len(rows))
	total := decimal.Zero
	for _, r := range rows {
		value := r.StockValue()
		total = total.Add(value)
		items = append(items, dto.LedgerRowDTO{
			SKU:        r.SKU,
			Name:       r.Name,
			Category:   r.Category,
			UnitPrice:  r.UnitPrice,
			Stock:      r.Stock,
			StockValue: value,
			Status:     r.Status,
			Location:   r.Location,
		})
	}

	return &dto.LedgerDTO{
		AdminID:     adminID,
		GeneratedAt: time.Now(),
		TotalValue:  total.Round(2),
		Rows:        items,
	}, nil
}

// BuildPDF arma el reporte y lo renderiza como PDF con los datos del dueño
// en el encabezado.
func (uc *LedgerUseCase) BuildPDF(ctx context.Context, adminID string) ([]byte, error) {
	user, err := uc.userRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	ledger, err := uc.Build(ctx, adminID)
	if err != nil {
		return nil, err
	}
	owner := dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, CreatedAt: user.CreatedAt}
	return uc.pdfGenerator.GenerateLedgerPDF(ctx, owner, ledger)
}
