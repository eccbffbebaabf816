package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
)

// DashboardHandler expone el resumen agregado del dueño.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard del dueño
// @Description  Contadores de productos, recepciones y entregas pendientes,
// @Description  traslados, y las últimas operaciones en orden cronológico inverso.
// @Tags         dashboard
// @Produce      json
// @Param        adminId  path  string  true  "ID del dueño"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/{adminId} [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	adminID := c.Params("adminId")
	if adminID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "adminId es requerido"})
	}
	out, err := h.uc.GetSummary(c.UserContext(), adminID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
