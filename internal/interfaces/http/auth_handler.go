package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/fumimanager/internal/application/auth"
	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/navigation"
	"github.com/jhoicas/fumimanager/pkg/jwt"
)

// TokenConfig parámetros del token de sesión.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	token TokenConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, token TokenConfig) *AuthHandler {
	return &AuthHandler{uc: uc, token: token}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}

	// un token vigente conserva su sesión; la guarda de doble envío va por email
	sessionID := GetSessionID(c)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s, err := h.uc.Login(c.UserContext(), sessionID, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return writeError(c, err)
	}
	tok, err := jwt.Generate(h.token.Secret, sessionID, h.token.Issuer, h.token.ExpMinutes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Token:     tok,
		SessionID: sessionID,
		Role:      string(s.Role),
		Name:      s.DisplayName,
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := GetSessionID(c); sid != "" {
		if err := h.uc.Logout(c.UserContext(), sid); err != nil {
			return writeError(c, err)
		}
	}
	c.Set("Location", "/login")
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	s := GetSession(c)
	out := dto.SessionResponse{LoggedIn: s.LoggedIn(), Role: string(s.Role), Name: s.DisplayName}
	if s.LoggedIn() {
		out.Portal = navigation.PortalLabel(s.Role)
	}
	return c.JSON(out)
}
