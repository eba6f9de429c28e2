package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/certificates"
	"github.com/jhoicas/fumimanager/internal/application/dto"
)

// CertificateHandler emisión y registro de certificados.
type CertificateHandler struct {
	uc *certificates.CertificateUseCase
}

// NewCertificateHandler construye el handler.
func NewCertificateHandler(uc *certificates.CertificateUseCase) *CertificateHandler {
	return &CertificateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear certificado
// @Tags         certificates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCertificateRequest  true  "Borrador del certificado"
// @Success      201   {object}  dto.CertificateResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/certificates [post]
func (h *CertificateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCertificateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Register godoc
// @Summary      Registro de certificados (reportes)
// @Tags         certificates
// @Security     Bearer
// @Produce      json
// @Param        branch  query  string  false  "Sucursal"
// @Param        search  query  string  false  "Partes, contenedor o número"
// @Param        status  query  string  false  "Issued | Pending Invoice | All"
// @Param        from    query  string  false  "Fecha de fumigación desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fecha de fumigación hasta (YYYY-MM-DD)"
// @Success      200     {object}  dto.CertificateListResponse
// @Router       /api/certificates [get]
func (h *CertificateHandler) Register(c *fiber.Ctx) error {
	out, err := h.uc.Register(dto.CertificateFilter{
		PageRequest: page(c),
		Branch:      c.Query("branch"),
		Search:      c.Query("search"),
		Status:      c.Query("status"),
		From:        c.Query("from"),
		To:          c.Query("to"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener certificado
// @Tags         certificates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.CertificateResponse
// @Router       /api/certificates/{id} [get]
func (h *CertificateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

type attachInvoiceRequest struct {
	InvoiceNo string `json:"invoice_no"`
}

// AttachInvoice godoc
// @Summary      Asociar número de factura (pasa a Issued)
// @Tags         certificates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.CertificateResponse
// @Router       /api/certificates/{id}/invoice [patch]
func (h *CertificateHandler) AttachInvoice(c *fiber.Ctx) error {
	var in attachInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AttachInvoice(c.Params("id"), in.InvoiceNo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Document godoc
// @Summary      Certificado en XML
// @Tags         certificates
// @Security     Bearer
// @Produce      xml
// @Param        id   path  string  true  "ID"
// @Success      200  {file}  binary
// @Router       /api/certificates/{id}/xml [get]
func (h *CertificateHandler) Document(c *fiber.Ctx) error {
	b, name, err := h.uc.Document(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(b)
}
