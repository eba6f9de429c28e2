package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// maintenanceChecker lo implementa *usecase.SettingsUseCase.
type maintenanceChecker interface {
	MaintenanceMode() bool
}

// RequireOnline responde 503 a las sesiones que no son admin mientras el modo
// mantenimiento está activo. Debe usarse después de SessionMiddleware.
func RequireOnline(checker maintenanceChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if checker.MaintenanceMode() && GetSession(c).Role != entity.RoleAdmin {
			c.Set(fiber.HeaderRetryAfter, "300")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MAINTENANCE",
				Message: domain.ErrMaintenance.Error(),
			})
		}
		return c.Next()
	}
}
