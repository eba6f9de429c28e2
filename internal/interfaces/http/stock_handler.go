package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/application/inventory"
)

// StockHandler inventario de insumos por sucursal.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Overview godoc
// @Summary      Niveles por sucursal con ocupación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BranchStockResponse
// @Router       /api/stock [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	return c.JSON(h.uc.Overview())
}

// Inward godoc
// @Summary      Registrar ingreso de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordStockRequest  true  "Sucursal, ítem, cantidad y referencia"
// @Success      201   {object}  dto.StockTransactionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/inward [post]
func (h *StockHandler) Inward(c *fiber.Ctx) error {
	var in dto.RecordStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordInward(actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Consume godoc
// @Summary      Registrar consumo de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordStockRequest  true  "Sucursal, ítem, cantidad y referencia"
// @Success      201   {object}  dto.StockTransactionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/consumption [post]
func (h *StockHandler) Consume(c *fiber.Ctx) error {
	var in dto.RecordStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordConsumption(actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de transacciones
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        branch  query  string  false  "Sucursal"
// @Param        item    query  string  false  "MB | ALP | Certificates"
// @Param        type    query  string  false  "Inward | Consumption"
// @Success      200     {array}  dto.StockTransactionResponse
// @Router       /api/stock/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	return c.JSON(h.uc.History(dto.StockHistoryFilter{
		PageRequest: page(c),
		Branch:      c.Query("branch"),
		Item:        c.Query("item"),
		Type:        c.Query("type"),
	}))
}

// Alerts godoc
// @Summary      Alertas de stock bajo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockAlertResponse
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	return c.JSON(h.uc.LowStockAlerts())
}

// Reconcile godoc
// @Summary      Conciliar niveles contra el historial
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReconcileResponse
// @Router       /api/stock/reconcile [get]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	return c.JSON(h.uc.Reconcile())
}
