// seed puebla la base de datos con un dueño de ejemplo y un inventario
// inicial para desarrollo local. Es idempotente: trunca las tablas antes
// de insertar.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/reference"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
)

const seedPassword = "admin123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Truncar en orden inverso a las FKs para poder re-ejecutar el seed.
	_, err = pool.Exec(ctx, `TRUNCATE adjustments, transfers, deliveries, receipts,
		reference_sequences, products, users`)
	if err != nil {
		log.Fatal().Err(err).Msg("truncar tablas")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("generar hash de password")
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "John Doe",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
	}
	userRepo := postgres.NewUserRepository(pool)
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("insertar usuario")
	}

	products := []*entity.Product{
		newProduct(admin.ID, "Laptop", "PROD001", "Electronics", "1200", 15, 5, now),
		newProduct(admin.ID, "Mouse", "PROD002", "Electronics", "25", 50, 10, now),
		newProduct(admin.ID, "Office Chair", "PROD003", "Furniture", "150", 10, 3, now),
	}
	productRepo := postgres.NewProductRepository(pool)
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("insertar producto")
		}
	}
	laptop, mouse, chair := products[0], products[1], products[2]

	sequenceRepo := postgres.NewSequenceRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	year := now.Year()
	receipts := []struct {
		product  *entity.Product
		supplier string
		quantity int
		status   domain.Status
		daysAgo  int
	}{
		{laptop, "Tech Supplies Co.", 10, domain.StatusReceived, 14},
		{mouse, "Gadget World", 50, domain.StatusWaiting, 2},
	}
	for _, r := range receipts {
		n, err := sequenceRepo.Next(ctx, admin.ID, repository.DocTypeReceipt, year)
		if err != nil {
			log.Fatal().Err(err).Msg("secuencia de recepciones")
		}
		err = receiptRepo.Create(&entity.Receipt{
			ID:        uuid.New().String(),
			AdminID:   admin.ID,
			ProductID: r.product.ID,
			Reference: reference.FormatSequential(reference.PrefixReceipt, year, n),
			Supplier:  r.supplier,
			Quantity:  r.quantity,
			Status:    r.status,
			Date:      now.AddDate(0, 0, -r.daysAgo),
			CreatedAt: now,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("insertar recepción")
		}
	}

	deliveryRepo := postgres.NewDeliveryRepository(pool)
	deliveries := []struct {
		product  *entity.Product
		customer string
		quantity int
		status   domain.Status
		daysAgo  int
	}{
		{laptop, "Alice Corp", 3, domain.StatusDelivered, 7},
		{mouse, "Bob Industries", 5, domain.StatusDraft, 1},
	}
	for _, d := range deliveries {
		date := now.AddDate(0, 0, -d.daysAgo)
		err := deliveryRepo.Create(&entity.Delivery{
			ID:        uuid.New().String(),
			AdminID:   admin.ID,
			ProductID: d.product.ID,
			Reference: reference.FormatTimestamp(reference.PrefixDelivery, date),
			Customer:  d.customer,
			Quantity:  d.quantity,
			Status:    d.status,
			Date:      date,
			CreatedAt: now,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("insertar entrega")
		}
	}

	transferRepo := postgres.NewTransferRepository(pool)
	transferDate := now.AddDate(0, 0, -3)
	err = transferRepo.Create(&entity.Transfer{
		ID:           uuid.New().String(),
		AdminID:      admin.ID,
		ProductID:    laptop.ID,
		Reference:    reference.FormatTimestamp(reference.PrefixTransfer, transferDate),
		FromLocation: "Warehouse A",
		ToLocation:   "Store B",
		Quantity:     5,
		Status:       domain.StatusCompleted,
		Date:         transferDate,
		CreatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("insertar traslado")
	}

	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	n, err := sequenceRepo.Next(ctx, admin.ID, repository.DocTypeAdjustment, year)
	if err != nil {
		log.Fatal().Err(err).Msg("secuencia de ajustes")
	}
	err = adjustmentRepo.Create(&entity.Adjustment{
		ID:        uuid.New().String(),
		AdminID:   admin.ID,
		ProductID: chair.ID,
		Reference: reference.FormatSequential(reference.PrefixAdjustment, year, n),
		Change:    -1,
		Reason:    "Damaged chair",
		Date:      now.AddDate(0, 0, -1),
		CreatedAt: now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("insertar ajuste")
	}

	log.Info().
		Str("admin", admin.Email).
		Str("password", seedPassword).
		Int("productos", len(products)).
		Msg("seed completado")
}

func newProduct(adminID, name, sku, category, price string, quantity, lowLimit int, now time.Time) *entity.Product {
	return &entity.Product{
		ID:            uuid.New().String(),
		AdminID:       adminID,
		Name:          name,
		SKU:           sku,
		Category:      category,
		UnitPrice:     decimal.RequireFromString(price),
		Quantity:      quantity,
		LowStockLimit: lowLimit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
