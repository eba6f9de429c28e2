package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/analytics"
)

// DashboardHandler tableros del operador y del administrador.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Operator godoc
// @Summary      Tablero del operador
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        tab  query  string  false  "All | Issued | Pending"
// @Success      200  {object}  dto.OperatorDashboardResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Operator(c *fiber.Ctx) error {
	out, err := h.uc.Operator(c.Query("tab"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Admin godoc
// @Summary      Tablero de administración
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	return c.JSON(h.uc.Admin())
}
