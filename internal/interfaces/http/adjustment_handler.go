package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// AdjustmentHandler maneja las peticiones HTTP para ajustes de stock.
type AdjustmentHandler struct {
	uc *usecase.AdjustmentUseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *usecase.AdjustmentUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar ajustes del dueño
// @Tags         adjustments
// @Produce      json
// @Param        adminId  path  string  true  "ID del dueño"
// @Success      200  {object}  dto.AdjustmentListResponse
// @Router       /api/adjustments/{adminId} [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	adminID := c.Params("adminId")
	if adminID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "adminId es requerido"})
	}
	out, err := h.uc.List(adminID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar ajuste tras conteo físico y reconciliar stock
// @Tags         adjustments
// @Accept       json
// @Produce      json
// @Param        adminId  path  string  true  "ID del dueño"
// @Param        body  body  dto.CreateAdjustmentRequest  true  "Conteo y motivo"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/adjustments/add/{adminId} [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	adminID := c.Params("adminId")
	if adminID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "adminId es requerido"})
	}
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), adminID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, reason y counted_quantity no negativa son requeridos"})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
