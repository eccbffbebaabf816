package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/reference"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ReceiptUseCase registra y lista recepciones de mercancía. La creación no
// muta stock; la referencia secuencial sale del asignador atómico.
type ReceiptUseCase struct {
	receiptRepo  repository.ReceiptRepository
	productRepo  repository.ProductRepository
	sequenceRepo repository.SequenceRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	sequenceRepo repository.SequenceRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{receiptRepo: receiptRepo, productRepo: productRepo, sequenceRepo: sequenceRepo}
}

// Create registra una recepción en estado Waiting. Valida que el producto
// exista y pertenezca al dueño; si no viene referencia, asigna REC-<año>-NNN.
func (uc *ReceiptUseCase) Create(ctx context.Context, adminID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if in.ProductID == "" || in.Supplier == "" || in.Quantity <= 0 || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, ok := dto.ParseDate(in.Date)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.AdminID != adminID {
		return nil, domain.ErrProductNotFound
	}

	ref := in.Reference
	if ref == "" {
		n, err := uc.sequenceRepo.Next(ctx, adminID, repository.DocTypeReceipt, date.Year())
		if err != nil {
			return nil, err
		}
		ref = reference.FormatSequential(reference.PrefixReceipt, date.Year(), n)
	}

	receipt := &entity.Receipt{
		ID:        uuid.New().String(),
		AdminID:   adminID,
		ProductID: in.ProductID,
		Reference: ref,
		Supplier:  in.Supplier,
		Quantity:  in.Quantity,
		Status:    domain.StatusWaiting,
		Date:      date,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.receiptRepo.Create(receipt); err != nil {
		return nil, err
	}
	receipt.Product = product
	return toReceiptResponse(receipt), nil
}

// List lista las recepciones del dueño, producto adjunto, fecha descendente.
func (uc *ReceiptUseCase) List(adminID string) (*dto.ReceiptListResponse, error) {
	list, err := uc.receiptRepo.ListByAdmin(adminID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReceiptResponse(r))
	}
	return &dto.ReceiptListResponse{Items: items}, nil
}

// UpdateStatus transiciona el estado de una recepción según la máquina de
// estados. No muta stock. Una recepción de otro dueño se trata como inexistente.
func (uc *ReceiptUseCase) UpdateStatus(id, adminID string, in dto.UpdateStatusRequest) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.AdminID != adminID {
		return nil, domain.ErrNotFound
	}
	next, err := receipt.Status.Transition(domain.Status(in.Status))
	if err != nil {
		return nil, err
	}
	if err := uc.receiptRepo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	receipt.Status = next
	return toReceiptResponse(receipt), nil
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:        r.ID,
		AdminID:   r.AdminID,
		Reference: r.Reference,
		Supplier:  r.Supplier,
		Quantity:  r.Quantity,
		Status:    string(r.Status),
		Date:      r.Date,
		Notes:     r.Notes,
		Product:   toProductRef(r.Product),
	}
}
