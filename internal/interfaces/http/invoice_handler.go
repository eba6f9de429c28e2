package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/billing"
	"github.com/jhoicas/fumimanager/internal/application/dto"
)

// InvoiceHandler facturación del operador.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

func invoiceFilter(c *fiber.Ctx) dto.InvoiceFilter {
	return dto.InvoiceFilter{PageRequest: page(c), Search: c.Query("search"), Status: c.Query("status")}
}

// Create godoc
// @Summary      Generar factura (impuesto y total derivados de la base)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Cliente, dirección, importe base y fecha"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Cliente o número"
// @Param        status  query  string  false  "Paid | Pending | Overdue | All"
// @Success      200     {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(invoiceFilter(c)))
}

// Stats godoc
// @Summary      Ingresos, pendiente y conteo por estado
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InvoiceStats
// @Router       /api/invoices/stats [get]
func (h *InvoiceHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Stats())
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Número de factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkPaid godoc
// @Summary      Marcar como pagada
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Número de factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Router       /api/invoices/{id}/paid [patch]
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura (requiere ?confirm=true)
// @Tags         invoices
// @Security     Bearer
// @Param        id       path   string  true  "Número de factura"
// @Param        confirm  query  bool    true  "Confirmación"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), c.QueryBool("confirm")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Document godoc
// @Summary      Documento imprimible (HTML)
// @Tags         invoices
// @Security     Bearer
// @Produce      html
// @Param        id   path  string  true  "Número de factura"
// @Success      200  {string}  string
// @Router       /api/invoices/{id}/document [get]
func (h *InvoiceHandler) Document(c *fiber.Ctx) error {
	html, err := h.uc.Document(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

// PDF godoc
// @Summary      Documento en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "Número de factura"
// @Success      200  {file}  binary
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	b, name, err := h.uc.PDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(name)
	return c.Send(b)
}

// Export godoc
// @Summary      Exportar facturas filtradas
// @Tags         invoices
// @Security     Bearer
// @Produce      text/csv
// @Param        format  query  string  false  "csv | xlsx"  default(csv)
// @Param        search  query  string  false  "Cliente o número"
// @Param        status  query  string  false  "Estado"
// @Success      200     {file}  binary
// @Router       /api/invoices/export [get]
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	file, err := h.uc.Export(invoiceFilter(c), c.Query("format", billing.FormatCSV))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Body)
}
