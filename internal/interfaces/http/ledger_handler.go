package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/reports"
	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// LedgerHandler expone el reporte de ledger de stock (JSON y PDF).
type LedgerHandler struct {
	uc *reports.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *reports.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Get godoc
// @Summary      Ledger de stock del dueño
// @Tags         ledger
// @Produce      json
// @Param        adminId  path  string  true  "ID del dueño"
// @Success      200  {object}  dto.LedgerDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/{adminId} [get]
func (h *LedgerHandler) Get(c *fiber.Ctx) error {
	adminID := c.Params("adminId")
	if adminID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "adminId es requerido"})
	}
	out, err := h.uc.Build(c.UserContext(), adminID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Ledger de stock del dueño en PDF
// @Tags         ledger
// @Produce      application/pdf
// @Param        adminId  path  string  true  "ID del dueño"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/{adminId}/pdf [get]
func (h *LedgerHandler) GetPDF(c *fiber.Ctx) error {
	adminID := c.Params("adminId")
	if adminID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "adminId es requerido"})
	}
	pdfBytes, err := h.uc.BuildPDF(c.UserContext(), adminID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("ledger-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
