package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity no se edita por
// esta vía: lo decrementan las entregas y lo reconcilian los ajustes.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto del dueño. SKU único por dueño.
func (uc *ProductUseCase) Create(adminID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByAdminAndSKU(adminID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Quantity < 0 || in.LowStockLimit < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		AdminID:       adminID,
		Name:          in.Name,
		SKU:           in.SKU,
		Category:      in.Category,
		UnitPrice:     in.UnitPrice,
		Quantity:      in.Quantity,
		LowStockLimit: in.LowStockLimit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID (usado por /product/details/:id).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// Update actualiza un producto del dueño. Un producto de otro dueño se trata
// como inexistente para no filtrar registros entre tenants.
func (uc *ProductUseCase) Update(id, adminID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.AdminID != adminID {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.LowStockLimit != nil {
		if *in.LowStockLimit < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.LowStockLimit = *in.LowStockLimit
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		AdminID:       p.AdminID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		UnitPrice:     p.UnitPrice,
		Quantity:      p.Quantity,
		LowStockLimit: p.LowStockLimit,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// toProductRef mapea el producto adjunto de un listado a su referencia corta.
func toProductRef(p *entity.Product) *dto.ProductRef {
	if p == nil {
		return nil
	}
	return &dto.ProductRef{ID: p.ID, Name: p.Name, SKU: p.SKU, Category: p.Category}
}
