package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// DeliveryHandler maneja las peticiones HTTP para entregas.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// List godoc
// @Summary      Listar entregas del dueño
// @Tags         deliveries
// @Produce      json
// @Param        adminId  path  string  true  "ID del dueño"
// @Success      200  {object}  dto.DeliveryListResponse
// @Router       /api/deliveries/{adminId} [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
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
// @Summary      Registrar entrega y descontar stock
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        adminId  path  string  true  "ID del dueño"
// @Param        body  body  dto.CreateDeliveryRequest  true  "Datos de la entrega"
// @Success      201   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/deliveries/add/{adminId} [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	adminID := c.Params("adminId")
	if adminID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "adminId es requerido"})
	}
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), adminID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, customer, quantity positiva y date válida son requeridos"})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar el estado de una entrega
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "ID de la entrega"
// @Param        adminId  path  string  true  "ID del dueño"
// @Param        body  body  dto.UpdateStatusRequest  true  "Estado destino"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/status/{adminId} [patch]
func (h *DeliveryHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	adminID := c.Params("adminId")
	if id == "" || adminID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y adminId son requeridos"})
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(id, adminID, in)
	if err != nil {
		return statusTransitionError(c, err, "entrega no encontrada")
	}
	return c.JSON(out)
}
