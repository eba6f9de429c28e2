package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/navigation"
)

// NavigationHandler menú lateral y resolución de rutas lógicas.
type NavigationHandler struct {
	menu   []navigation.Section
	router *navigation.Router
}

// NewNavigationHandler construye el handler con el menú y la tabla de rutas.
func NewNavigationHandler(menu []navigation.Section, router *navigation.Router) *NavigationHandler {
	return &NavigationHandler{menu: menu, router: router}
}

// Menu godoc
// @Summary      Menú visible para la sesión
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	s := GetSession(c)
	out := dto.NavigationResponse{
		Role:     string(s.Role),
		Name:     s.DisplayName,
		Sections: navigation.VisibleSections(h.menu, s.Role),
	}
	if s.LoggedIn() {
		out.Portal = navigation.PortalLabel(s.Role)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver una ruta lógica aplicando el guard
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Param        path  query  string  true  "Ruta, p. ej. /admin/users"
// @Success      200   {object}  navigation.Outcome
// @Router       /api/navigation/resolve [get]
func (h *NavigationHandler) Resolve(c *fiber.Ctx) error {
	path := c.Query("path", "/")
	return c.JSON(h.router.Navigate(GetSession(c), path))
}
