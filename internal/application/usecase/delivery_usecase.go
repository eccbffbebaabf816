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

// DeliveryUseCase registra y lista entregas. Crear una entrega decrementa el
// stock del producto acotado a cero; inserción y decremento van en una sola
// transacción para que ninguno quede a medias.
type DeliveryUseCase struct {
	txRunner     TxRunner
	deliveryRepo repository.DeliveryRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(txRunner TxRunner, deliveryRepo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{txRunner: txRunner, deliveryRepo: deliveryRepo}
}

// Create valida producto/cliente/cantidad/fecha, registra la entrega en Draft
// con referencia DEL-<unix-ms> y deja el stock en max(0, stock - cantidad).
func (uc *DeliveryUseCase) Create(ctx context.Context, adminID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if in.ProductID == "" || in.Customer == "" || in.Quantity <= 0 || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, ok := dto.ParseDate(in.Date)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	delivery := &entity.Delivery{
		ID:        uuid.New().String(),
		AdminID:   adminID,
		ProductID: in.ProductID,
		Reference: reference.FormatTimestamp(reference.PrefixDelivery, now),
		Customer:  in.Customer,
		Quantity:  in.Quantity,
		Status:    domain.StatusDraft,
		Date:      date,
		CreatedAt: now,
	}

	var product *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		deliveryRepo repository.DeliveryRepository,
		_ repository.AdjustmentRepository,
	) error {
		var err error
		product, err = productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.AdminID != adminID {
			return domain.ErrProductNotFound
		}
		if err := deliveryRepo.Create(delivery); err != nil {
			return err
		}
		remaining := product.Quantity - in.Quantity
		if remaining < 0 {
			remaining = 0 // el stock nunca baja de cero
		}
		product.Quantity = remaining
		return productRepo.UpdateQuantity(product.ID, remaining)
	})
	if err != nil {
		return nil, err
	}

	delivery.Product = product
	return toDeliveryResponse(delivery), nil
}

// List lista las entregas del dueño, producto adjunto, fecha descendente.
func (uc *DeliveryUseCase) List(adminID string) (*dto.DeliveryListResponse, error) {
	list, err := uc.deliveryRepo.ListByAdmin(adminID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d))
	}
	return &dto.DeliveryListResponse{Items: items}, nil
}

// UpdateStatus transiciona el estado de una entrega según la máquina de
// estados. No revierte ni repite el decremento de stock.
func (uc *DeliveryUseCase) UpdateStatus(id, adminID string, in dto.UpdateStatusRequest) (*dto.DeliveryResponse, error) {
	delivery, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil || delivery.AdminID != adminID {
		return nil, domain.ErrNotFound
	}
	next, err := delivery.Status.Transition(domain.Status(in.Status))
	if err != nil {
		return nil, err
	}
	if err := uc.deliveryRepo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	delivery.Status = next
	return toDeliveryResponse(delivery), nil
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:        d.ID,
		AdminID:   d.AdminID,
		Reference: d.Reference,
		Customer:  d.Customer,
		Quantity:  d.Quantity,
		Status:    string(d.Status),
		Date:      d.Date,
		Product:   toProductRef(d.Product),
	}
}
