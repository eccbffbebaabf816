package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/reports"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	ReceiptUC    *usecase.ReceiptUseCase
	DeliveryUC   *usecase.DeliveryUseCase
	TransferUC   *usecase.TransferUseCase
	AdjustmentUC *usecase.AdjustmentUseCase
	OverviewUC   *analytics.OverviewUseCase
	DashboardUC  *analytics.DashboardUseCase
	LedgerUC     *reports.LedgerUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Las rutas llevan el adminId en el
// path; cada listado y escritura queda acotado a ese dueño.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTSecret)
	api.Post("/auth/signin", authHandler.Signin)
	api.Get("/settings/:adminId", authHandler.Settings)
	api.Get("/profile", authHandler.Profile)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/:adminId", dashboardHandler.Summary)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, deps.OverviewUC)
	api.Get("/products/:adminId", productHandler.List)
	api.Post("/products/add/:adminId", productHandler.Create)
	api.Put("/products/:id/:adminId", productHandler.Update)
	api.Get("/product/details/:id", productHandler.Details)

	// Receipts
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	api.Get("/receipts/:adminId", receiptHandler.List)
	api.Post("/receipts/add/:adminId", receiptHandler.Create)
	api.Patch("/receipts/:id/status/:adminId", receiptHandler.UpdateStatus)

	// Deliveries
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	api.Get("/deliveries/:adminId", deliveryHandler.List)
	api.Post("/deliveries/add/:adminId", deliveryHandler.Create)
	api.Patch("/deliveries/:id/status/:adminId", deliveryHandler.UpdateStatus)

	// Transfers
	transferHandler := NewTransferHandler(deps.TransferUC)
	api.Get("/transfers/:adminId", transferHandler.List)
	api.Post("/transfers/add/:adminId", transferHandler.Create)
	api.Patch("/transfers/:id/status/:adminId", transferHandler.UpdateStatus)

	// Adjustments
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	api.Get("/adjustments/:adminId", adjustmentHandler.List)
	api.Post("/adjustments/add/:adminId", adjustmentHandler.Create)

	// Ledger
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	api.Get("/ledger/:adminId", ledgerHandler.Get)
	api.Get("/ledger/:adminId/pdf", ledgerHandler.GetPDF)
}
