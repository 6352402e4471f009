package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/application/production"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
)

// ProductionHandler maneja recetas (BOM) y la máquina de estados de órdenes de producción.
type ProductionHandler struct {
	uc       *production.UseCase
	sheetGen production.PrintSheetGenerator
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase, sheetGen production.PrintSheetGenerator) *ProductionHandler {
	return &ProductionHandler{uc: uc, sheetGen: sheetGen}
}

// productionError mapea errores de dominio de producción a HTTP.
func productionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicateCode):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "código ya registrado"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
	case errors.Is(err, domain.ErrInsufficientMaterial):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_MATERIAL", Message: "materia prima insuficiente en el taller"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "existencias insuficientes"})
	case errors.Is(err, domain.ErrTransientConflict):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "RETRY", Message: "conflicto transitorio, reintente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// CreateBOM godoc
// @Summary      Crear receta (BOM)
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBOMRequest  true  "name, output_variant_id, materials"
// @Success      201   {object}  dto.BOMResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production/bom [post]
func (h *ProductionHandler) CreateBOM(c *fiber.Ctx) error {
	var in dto.CreateBOMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := production.CreateBOMInput{Name: in.Name, OutputVariantID: in.OutputVariantID}
	for _, m := range in.Materials {
		input.Lines = append(input.Lines, production.BOMLineInput{
			MaterialVariantID: m.MaterialVariantID,
			QuantityNeeded:    m.QuantityNeeded,
		})
	}
	bom, err := h.uc.CreateBOM(c.UserContext(), input)
	if err != nil {
		return productionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBOMResponse(bom))
}

// ListBOMs godoc
// @Summary      Listar recetas
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx resultados (def 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.BOMResponse
// @Router       /api/production/boms [get]
func (h *ProductionHandler) ListBOMs(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	boms, err := h.uc.ListBOMs(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return productionError(c, err)
	}
	resp := make([]dto.BOMResponse, 0, len(boms))
	for _, bom := range boms {
		resp = append(resp, toBOMResponse(bom))
	}
	return c.JSON(resp)
}

// CreateOrder godoc
// @Summary      Crear orden de producción (borrador)
// @Description  La orden nace en draft y no toca el libro de inventario hasta iniciarse.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionOrderRequest  true  "code, warehouse, output, bom, quantity"
// @Success      201   {object}  dto.ProductionOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/orders [post]
func (h *ProductionHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateProductionOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.UserContext(), production.CreateOrderInput{
		Code:            in.Code,
		WarehouseID:     in.WarehouseID,
		OutputVariantID: in.OutputVariantID,
		BOMID:           in.BOMID,
		QuantityPlanned: in.QuantityPlanned,
		StartDate:       in.StartDate,
		DueDate:         in.DueDate,
	})
	if err != nil {
		return productionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductionOrderResponse(order))
}

// ListOrders godoc
// @Summary      Listar órdenes de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "filtrar por taller"
// @Param        limit         query  int     false  "máx resultados (def 20)"
// @Param        offset        query  int     false  "desplazamiento"
// @Success      200  {array}  dto.ProductionOrderResponse
// @Router       /api/production/orders [get]
func (h *ProductionHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	orders, err := h.uc.List(c.UserContext(), c.Query("warehouse_id"), page.Limit, page.Offset)
	if err != nil {
		return productionError(c, err)
	}
	resp := make([]dto.ProductionOrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toProductionOrderResponse(order))
	}
	return c.JSON(resp)
}

// UpdateOrder godoc
// @Summary      Actualizar orden (solo en draft)
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateProductionOrderRequest  true  "campos editables"
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id} [put]
func (h *ProductionHandler) UpdateOrder(c *fiber.Ctx) error {
	var in dto.UpdateProductionOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.Update(c.UserContext(), c.Params("id"), production.UpdateOrderInput{
		QuantityPlanned: in.QuantityPlanned,
		StartDate:       in.StartDate,
		DueDate:         in.DueDate,
	})
	if err != nil {
		return productionError(c, err)
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

// DeleteOrder godoc
// @Summary      Eliminar orden (solo en draft)
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id} [delete]
func (h *ProductionHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return productionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StartOrder godoc
// @Summary      Iniciar orden: consume la materia prima de la receta
// @Description  Debita cada material (cantidad por unidad × planificado) del taller. Si falta cualquiera, la orden permanece en draft sin efectos.
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/start [post]
func (h *ProductionHandler) StartOrder(c *fiber.Ctx) error {
	if err := h.uc.Start(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return productionError(c, err)
	}
	return c.JSON(fiber.Map{"status": entity.ProductionStatusInProgress})
}

// ReceiveGoods godoc
// @Summary      Recepción parcial de producto terminado
// @Description  Acredita el producto de salida al costo unitario asignado de la orden.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.ReceiveGoodsRequest  true  "quantity, note"
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/receive [post]
func (h *ProductionHandler) ReceiveGoods(c *fiber.Ctx) error {
	var in dto.ReceiveGoodsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Receive(c.UserContext(), c.Params("id"), GetUserID(c), in.Quantity, in.Note); err != nil {
		return productionError(c, err)
	}
	return c.JSON(fiber.Map{"status": "received"})
}

// CompleteOrder godoc
// @Summary      Cerrar orden como completed
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/complete [post]
func (h *ProductionHandler) CompleteOrder(c *fiber.Ctx) error {
	if err := h.uc.Finish(c.UserContext(), c.Params("id")); err != nil {
		return productionError(c, err)
	}
	return c.JSON(fiber.Map{"status": entity.ProductionStatusCompleted})
}

// ForceFinishOrder godoc
// @Summary      Cerrar orden como force_finished
// @Description  Cierre anticipado: lo ya recibido permanece acreditado y la materia prima consumida no se devuelve.
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/force-finish [post]
func (h *ProductionHandler) ForceFinishOrder(c *fiber.Ctx) error {
	if err := h.uc.ForceFinish(c.UserContext(), c.Params("id")); err != nil {
		return productionError(c, err)
	}
	return c.JSON(fiber.Map{"status": entity.ProductionStatusForceFinished})
}

// OrderDetails godoc
// @Summary      Orden con su receta expandida a requerimientos totales
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.ProductionOrderDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/details [get]
func (h *ProductionHandler) OrderDetails(c *fiber.Ctx) error {
	details, err := h.uc.Details(c.UserContext(), c.Params("id"))
	if err != nil {
		return productionError(c, err)
	}
	resp := dto.ProductionOrderDetailsResponse{
		Order:        toProductionOrderResponse(details.Order),
		Requirements: make([]dto.ProductionRequirementResponse, 0, len(details.Requirements)),
	}
	for _, req := range details.Requirements {
		resp.Requirements = append(resp.Requirements, dto.ProductionRequirementResponse{
			MaterialVariantID: req.MaterialVariantID,
			SKU:               req.SKU,
			Name:              req.Name,
			QuantityPerUnit:   req.QuantityPerUnit,
			TotalRequired:     req.TotalRequired,
		})
	}
	return c.JSON(resp)
}

// OrderHistory godoc
// @Summary      Historial de recepciones de la orden
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {array}  dto.ReceiveRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/history [get]
func (h *ProductionHandler) OrderHistory(c *fiber.Ctx) error {
	records, err := h.uc.History(c.UserContext(), c.Params("id"))
	if err != nil {
		return productionError(c, err)
	}
	resp := make([]dto.ReceiveRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.ReceiveRecordResponse{
			Quantity:  r.Quantity,
			Note:      r.Note,
			CreatedAt: r.CreatedAt,
		})
	}
	return c.JSON(resp)
}

// PrintOrder godoc
// @Summary      Hoja imprimible de la orden (PDF)
// @Tags         production
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/print [get]
func (h *ProductionHandler) PrintOrder(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.PrintSheet(c.UserContext(), h.sheetGen, c.Params("id"))
	if err != nil {
		return productionError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orden-produccion.pdf"`)
	return c.Send(pdfBytes)
}

// QuickCreate godoc
// @Summary      Flujo rápido: variante + receta + orden en una llamada
// @Description  Con auto_start la orden inicia de inmediato; si falta materia prima, variante, receta y orden quedan creadas y la orden permanece en draft.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuickProductionRequest  true  "producto nuevo, receta y orden"
// @Success      201   {object}  dto.ProductionOrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/orders/quick [post]
func (h *ProductionHandler) QuickCreate(c *fiber.Ctx) error {
	var in dto.QuickProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := production.QuickCreateInput{
		NewProductName:  in.NewProductName,
		NewProductSKU:   in.NewProductSKU,
		OrderCode:       in.OrderCode,
		WarehouseID:     in.WarehouseID,
		QuantityPlanned: in.QuantityPlanned,
		StartDate:       in.StartDate,
		DueDate:         in.DueDate,
		AutoStart:       in.AutoStart,
		UserID:          GetUserID(c),
	}
	for _, m := range in.Materials {
		input.Lines = append(input.Lines, production.BOMLineInput{
			MaterialVariantID: m.MaterialVariantID,
			QuantityNeeded:    m.QuantityNeeded,
		})
	}
	order, err := h.uc.QuickCreate(c.UserContext(), input)
	if err != nil {
		// AutoStart fallido con orden ya creada: se informa la orden en draft
		if order != nil && errors.Is(err, domain.ErrInsufficientMaterial) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"order": toProductionOrderResponse(order),
				"error": dto.ErrorResponse{Code: "INSUFFICIENT_MATERIAL", Message: "materia prima insuficiente; la orden quedó en draft"},
			})
		}
		return productionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductionOrderResponse(order))
}

func toProductionOrderResponse(order *entity.ProductionOrder) dto.ProductionOrderResponse {
	return dto.ProductionOrderResponse{
		ID:               order.ID,
		Code:             order.Code,
		WarehouseID:      order.WarehouseID,
		OutputVariantID:  order.OutputVariantID,
		BOMID:            order.BOMID,
		QuantityPlanned:  order.QuantityPlanned,
		QuantityFinished: order.QuantityFinished,
		Status:           order.Status,
		StartDate:        order.StartDate,
		DueDate:          order.DueDate,
	}
}

func toBOMResponse(bom *entity.BOM) dto.BOMResponse {
	resp := dto.BOMResponse{
		ID:              bom.ID,
		Name:            bom.Name,
		OutputVariantID: bom.OutputVariantID,
	}
	for _, line := range bom.Lines {
		resp.Materials = append(resp.Materials, dto.BOMLineRequest{
			MaterialVariantID: line.MaterialVariantID,
			QuantityNeeded:    line.QuantityNeeded,
		})
	}
	return resp
}
