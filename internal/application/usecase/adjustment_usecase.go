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

// AdjustmentUseCase registra y lista ajustes de conteo físico. El delta se
// calcula contra Product.Quantity, el único campo canónico de stock, y el
// producto queda con la cantidad contada. Cálculo, inserción y
// sobreescritura van en una sola transacción.
type AdjustmentUseCase struct {
	txRunner       TxRunner
	adjustmentRepo repository.AdjustmentRepository
	sequenceRepo   repository.SequenceRepository
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	txRunner TxRunner,
	adjustmentRepo repository.AdjustmentRepository,
	sequenceRepo repository.SequenceRepository,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner, adjustmentRepo: adjustmentRepo, sequenceRepo: sequenceRepo}
}

// Create registra un ajuste con referencia ADJ-<año>-NNN y reconcilia el
// stock del producto con la cantidad contada.
func (uc *AdjustmentUseCase) Create(ctx context.Context, adminID string, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if in.ProductID == "" || in.Reason == "" || in.CountedQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	n, err := uc.sequenceRepo.Next(ctx, adminID, repository.DocTypeAdjustment, now.Year())
	if err != nil {
		return nil, err
	}

	adjustment := &entity.Adjustment{
		ID:        uuid.New().String(),
		AdminID:   adminID,
		ProductID: in.ProductID,
		Reference: reference.FormatSequential(reference.PrefixAdjustment, now.Year(), n),
		Reason:    in.Reason,
		Date:      now,
		CreatedAt: now,
	}

	var product *entity.Product
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.DeliveryRepository,
		adjustmentRepo repository.AdjustmentRepository,
	) error {
		var err error
		product, err = productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.AdminID != adminID {
			return domain.ErrProductNotFound
		}
		adjustment.Change = in.CountedQuantity - product.Quantity
		if err := adjustmentRepo.Create(adjustment); err != nil {
			return err
		}
		product.Quantity = in.CountedQuantity
		return productRepo.UpdateQuantity(product.ID, in.CountedQuantity)
	})
	if err != nil {
		return nil, err
	}

	adjustment.Product = product
	return toAdjustmentResponse(adjustment), nil
}

// List lista los ajustes del dueño, producto adjunto, fecha descendente.
func (uc *AdjustmentUseCase) List(adminID string) (*dto.AdjustmentListResponse, error) {
	list, err := uc.adjustmentRepo.ListByAdmin(adminID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdjustmentResponse(a))
	}
	return &dto.AdjustmentListResponse{Items: items}, nil
}

func toAdjustmentResponse(a *entity.Adjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:        a.ID,
		AdminID:   a.AdminID,
		Reference: a.Reference,
		Change:    a.Change,
		Reason:    a.Reason,
		Date:      a.Date,
		Product:   toProductRef(a.Product),
	}
}
