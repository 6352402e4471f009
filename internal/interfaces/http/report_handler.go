package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textil-api/internal/application/analytics"
	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/domain"
)

// ReportHandler maneja los tableros de bodega central y talleres.
type ReportHandler struct {
	uc *analytics.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Central godoc
// @Summary      Tablero de la bodega central de una marca
// @Description  Totales de existencias por SKU, compras recientes, producción activa y resumen de talleres de la marca.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la bodega central"
// @Success      200  {object}  dto.CentralDashboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/central/{id} [get]
func (h *ReportHandler) Central(c *fiber.Ctx) error {
	resp, err := h.uc.CentralDashboard(c.UserContext(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la bodega no es central"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Workshop godoc
// @Summary      Detalle de existencias y órdenes de un taller
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del taller"
// @Success      200  {object}  dto.WorkshopDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/workshop/{id} [get]
func (h *ReportHandler) Workshop(c *fiber.Ctx) error {
	resp, err := h.uc.WorkshopDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
