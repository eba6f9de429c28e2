package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/access"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/pkg/jwt"
)

// Locals keys de la sesión en Fiber.
const (
	LocalSessionID = "session_id"
	LocalSession   = "session"
)

// sessionReader lo implementa *auth.AuthUseCase.
type sessionReader interface {
	Current(ctx context.Context, sessionID string) (entity.Session, error)
}

// publicAuthPrefix rutas de auth que aceptan un token viejo como guest.
const publicAuthPrefix = "/api/auth/"

// SessionMiddleware lee el Bearer Token (si existe), extrae el id de sesión y carga la sesión
// almacenada en c.Locals. Sin token la petición sigue como guest; un token inválido es 401,
// salvo en /api/auth/*, donde se ignora y la petición sigue como guest.
func SessionMiddleware(jwtSecret string, sessions sessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalSession, entity.Session{Role: entity.RoleGuest})

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		reject := func(code, msg string) error {
			if strings.HasPrefix(c.Path(), publicAuthPrefix) {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return reject("INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return reject("MISSING_TOKEN", "token vacío")
		}
		sessionID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return reject("INVALID_TOKEN", "token inválido o expirado")
		}
		s, err := sessions.Current(c.UserContext(), sessionID)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalSessionID, sessionID)
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// RequireSession exige una sesión iniciada; si no, 401 con redirect a /login.
func RequireSession() fiber.Handler {
	return guard(access.Any)
}

// RequireRole exige exactamente el rol indicado; otro rol recibe 403 con redirect a /dashboard.
func RequireRole(role entity.Role) fiber.Handler {
	return guard(access.Only(role))
}

func guard(req access.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := access.Guard(GetSession(c), req)
		if d.Allowed {
			return c.Next()
		}
		c.Set("Location", d.Redirect)
		if d.Redirect == access.LoginPath {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "inicie sesión (" + d.Redirect + ")"})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a esta vista (" + d.Redirect + ")"})
	}
}

// GetSession devuelve la sesión del contexto (guest si no hay).
func GetSession(c *fiber.Ctx) entity.Session {
	s, ok := c.Locals(LocalSession).(entity.Session)
	if !ok {
		return entity.Session{Role: entity.RoleGuest}
	}
	return s
}

// GetSessionID devuelve el id de sesión del token, o "".
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	return string(GetSession(c).Role)
}

// actor nombre con el que se firman las entradas de actividad.
func actor(c *fiber.Ctx) string {
	return GetSession(c).DisplayName
}
