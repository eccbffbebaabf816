package usecase_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios. Reproducen los contratos de los
// puertos: (nil, nil) cuando no existe, listados del dueño en fecha
// descendente, y asignación secuencial por (dueño, tipo, año).
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.products {
		if p.AdminID == product.AdminID && p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByAdminAndSKU(adminID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.AdminID == adminID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("producto %s no existe", product.ID)
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(productID string, quantity int) error {
	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("producto %s no existe", productID)
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) ListByAdmin(adminID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.AdminID == adminID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// quantityOf lee el stock actual guardado en el fake.
func (r *fakeProductRepo) quantityOf(id string) int {
	return r.products[id].Quantity
}

type fakeDeliveryRepo struct {
	deliveries []*entity.Delivery
}

func (r *fakeDeliveryRepo) Create(delivery *entity.Delivery) error {
	cp := *delivery
	r.deliveries = append(r.deliveries, &cp)
	return nil
}

func (r *fakeDeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	for _, d := range r.deliveries {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDeliveryRepo) ListByAdmin(adminID string) ([]*entity.Delivery, error) {
	var out []*entity.Delivery
	for _, d := range r.deliveries {
		if d.AdminID == adminID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeDeliveryRepo) UpdateStatus(id string, status domain.Status) error {
	for _, d := range r.deliveries {
		if d.ID == id {
			d.Status = status
			return nil
		}
	}
	return fmt.Errorf("entrega %s no existe", id)
}

type fakeReceiptRepo struct {
	receipts []*entity.Receipt
}

func (r *fakeReceiptRepo) Create(receipt *entity.Receipt) error {
	cp := *receipt
	r.receipts = append(r.receipts, &cp)
	return nil
}

func (r *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	for _, rec := range r.receipts {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) ListByAdmin(adminID string) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, rec := range r.receipts {
		if rec.AdminID == adminID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeReceiptRepo) UpdateStatus(id string, status domain.Status) error {
	for _, rec := range r.receipts {
		if rec.ID == id {
			rec.Status = status
			return nil
		}
	}
	return fmt.Errorf("recepción %s no existe", id)
}

type fakeTransferRepo struct {
	transfers []*entity.Transfer
}

func (r *fakeTransferRepo) Create(transfer *entity.Transfer) error {
	cp := *transfer
	r.transfers = append(r.transfers, &cp)
	return nil
}

func (r *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	for _, tr := range r.transfers {
		if tr.ID == id {
			cp := *tr
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTransferRepo) ListByAdmin(adminID string) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, tr := range r.transfers {
		if tr.AdminID == adminID {
			cp := *tr
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeTransferRepo) UpdateStatus(id string, status domain.Status) error {
	for _, tr := range r.transfers {
		if tr.ID == id {
			tr.Status = status
			return nil
		}
	}
	return fmt.Errorf("traslado %s no existe", id)
}

type fakeAdjustmentRepo struct {
	adjustments []*entity.Adjustment
}

func (r *fakeAdjustmentRepo) Create(adjustment *entity.Adjustment) error {
	cp := *adjustment
	r.adjustments = append(r.adjustments, &cp)
	return nil
}

func (r *fakeAdjustmentRepo) ListByAdmin(adminID string) ([]*entity.Adjustment, error) {
	var out []*entity.Adjustment
	for _, a := range r.adjustments {
		if a.AdminID == adminID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// fakeSequenceRepo asigna números crecientes por (dueño, tipo, año).
type fakeSequenceRepo struct {
	counters map[string]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: make(map[string]int64)}
}

func (r *fakeSequenceRepo) Next(_ context.Context, adminID, docType string, year int) (int64, error) {
	key := fmt.Sprintf("%s/%s/%d", adminID, docType, year)
	r.counters[key]++
	return r.counters[key], nil
}

// fakeTxRunner pasa los fakes de siempre sin transacción real. Si fn falla,
// el error se propaga tal cual (los fakes no se revierten; los tests que
// esperan fallo no inspeccionan estado posterior).
type fakeTxRunner struct {
	productRepo    *fakeProductRepo
	deliveryRepo   *fakeDeliveryRepo
	adjustmentRepo *fakeAdjustmentRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	deliveryRepo repository.DeliveryRepository,
	adjustmentRepo repository.AdjustmentRepository,
) error) error {
	return fn(r.productRepo, r.deliveryRepo, r.adjustmentRepo)
}
