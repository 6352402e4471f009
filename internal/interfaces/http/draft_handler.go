package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/application/usecase"
	"github.com/jhoicas/textil-api/internal/domain"
)

// DraftHandler maneja el flujo de aprobación de diseños en borrador.
type DraftHandler struct {
	uc *usecase.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *usecase.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// draftError mapea errores de dominio de borradores a HTTP.
func draftError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del borrador inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador no encontrado"})
	case errors.Is(err, domain.ErrDuplicateCode):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "código de borrador ya registrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Create godoc
// @Summary      Crear borrador de diseño
// @Description  El borrador nace en pending con un plazo de decisión de 48 horas.
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDraftRequest  true  "code, name, image_urls, notes"
// @Success      201   {object}  dto.DraftResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return draftError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener borrador con su estado de plazo
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *DraftHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return draftError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar borrador (incluye cambio de estado)
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.UpdateDraftRequest  true  "campos del borrador"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [put]
func (h *DraftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return draftError(c, err)
	}
	return c.JSON(resp)
}

// SetStatus godoc
// @Summary      Cambiar solo el estado de un borrador
// @Description  Aprobar o rechazar sin reenviar el resto de los campos.
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.UpdateDraftStatusRequest  true  "pending | approved | rejected"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/status [patch]
func (h *DraftHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateDraftStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return draftError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar borrador
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [delete]
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return draftError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar borradores con su estado de plazo
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx resultados (def 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.DraftResponse
// @Router       /api/drafts [get]
func (h *DraftHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	resp, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
