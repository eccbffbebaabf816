package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/reference"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TransferUseCase registra y lista traslados internos. Un traslado nunca muta
// stock: solo aporta la ubicación vigente del producto.
type TransferUseCase struct {
	transferRepo repository.TransferRepository
	productRepo  repository.ProductRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(transferRepo repository.TransferRepository, productRepo repository.ProductRepository) *TransferUseCase {
	return &TransferUseCase{transferRepo: transferRepo, productRepo: productRepo}
}

// Create valida producto/origen/destino/cantidad y registra el traslado en
// Waiting, con fecha actual y referencia TRF-<unix-ms>.
func (uc *TransferUseCase) Create(adminID string, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.ProductID == "" || in.FromLocation == "" || in.ToLocation == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.AdminID != adminID {
		return nil, domain.ErrProductNotFound
	}

	now := time.Now()
	transfer := &entity.Transfer{
		ID:           uuid.New().String(),
		AdminID:      adminID,
		ProductID:    in.ProductID,
		Reference:    reference.FormatTimestamp(reference.PrefixTransfer, now),
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Quantity:     in.Quantity,
		Status:       domain.StatusWaiting,
		Date:         now,
		CreatedAt:    now,
	}
	if err := uc.transferRepo.Create(transfer); err != nil {
		return nil, err
	}
	transfer.Product = product
	return toTransferResponse(transfer), nil
}

// List lista los traslados del dueño, producto adjunto, fecha descendente.
func (uc *TransferUseCase) List(adminID string) (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.ListByAdmin(adminID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{Items: items}, nil
}

// UpdateStatus transiciona el estado de un traslado según la máquina de estados.
func (uc *TransferUseCase) UpdateStatus(id, adminID string, in dto.UpdateStatusRequest) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil || transfer.AdminID != adminID {
		return nil, domain.ErrNotFound
	}
	next, err := transfer.Status.Transition(domain.Status(in.Status))
	if err != nil {
		return nil, err
	}
	if err := uc.transferRepo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	transfer.Status = next
	return toTransferResponse(transfer), nil
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:           t.ID,
		AdminID:      t.AdminID,
		Reference:    t.Reference,
		FromLocation: t.FromLocation,
		ToLocation:   t.ToLocation,
		Quantity:     t.Quantity,
		Status:       string(t.Status),
		Date:         t.Date,
		Product:      toProductRef(t.Product),
	}
}
