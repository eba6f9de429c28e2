package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/application/usecase"
)

// UserHandler gestión de usuarios (solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         admin-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
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
// @Summary      Listar usuarios
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre o email"
// @Param        role    query  string  false  "Admin | Operator | All"
// @Param        status  query  string  false  "Active | Inactive | All"
// @Success      200     {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(dto.UserFilter{
		PageRequest: page(c),
		Search:      c.Query("search"),
		Role:        c.Query("role"),
		Status:      c.Query("status"),
	}))
}

// GetByID godoc
// @Summary      Obtener usuario
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario (solo los campos enviados)
// @Tags         admin-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID"
// @Param        body  body  dto.UpdateUserRequest  true  "Cambios"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Alternar Active/Inactive
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.UserResponse
// @Router       /api/admin/users/{id}/toggle [patch]
func (h *UserHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario (requiere ?confirm=true)
// @Tags         admin-users
// @Security     Bearer
// @Param        id       path   string  true  "ID"
// @Param        confirm  query  bool    true  "Confirmación"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), c.QueryBool("confirm")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BranchHandler gestión de sucursales (solo admin).
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         admin-branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBranchRequest  true  "Datos de la sucursal"
// @Success      201   {object}  dto.BranchResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
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
// @Summary      Listar sucursales
// @Tags         admin-branches
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre, ubicación o código"
// @Param        status  query  string  false  "Active | Maintenance | All"
// @Success      200     {object}  dto.BranchListResponse
// @Router       /api/admin/branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(dto.BranchFilter{
		PageRequest: page(c),
		Search:      c.Query("search"),
		Status:      c.Query("status"),
	}))
}

// GetByID godoc
// @Summary      Obtener sucursal
// @Tags         admin-branches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.BranchResponse
// @Router       /api/admin/branches/{id} [get]
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sucursal
// @Tags         admin-branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID"
// @Param        body  body  dto.UpdateBranchRequest  true  "Cambios"
// @Success      200   {object}  dto.BranchResponse
// @Router       /api/admin/branches/{id} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Alternar Active/Maintenance
// @Tags         admin-branches
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.BranchResponse
// @Router       /api/admin/branches/{id}/toggle [patch]
func (h *BranchHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sucursal (requiere ?confirm=true)
// @Tags         admin-branches
// @Security     Bearer
// @Param        id       path   string  true  "ID"
// @Param        confirm  query  bool    true  "Confirmación"
// @Success      204
// @Router       /api/admin/branches/{id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), c.QueryBool("confirm")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MasterDataHandler catálogos de exportadores, tratamientos y sucursales.
type MasterDataHandler struct {
	uc *usecase.MasterDataUseCase
}

// NewMasterDataHandler construye el handler.
func NewMasterDataHandler(uc *usecase.MasterDataUseCase) *MasterDataHandler {
	return &MasterDataHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar entrada de catálogo
// @Tags         admin-master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMasterDataRequest  true  "Entrada"
// @Success      201   {object}  dto.MasterDataResponse
// @Router       /api/admin/master-data [post]
func (h *MasterDataHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMasterDataRequest
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
// @Summary      Listar catálogo por pestaña
// @Tags         admin-master-data
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "exporters | treatments | branches"
// @Param        search    query  string  false  "Nombre o detalle"
// @Success      200       {object}  dto.MasterDataListResponse
// @Router       /api/admin/master-data [get]
func (h *MasterDataHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(dto.MasterDataFilter{
		PageRequest: page(c),
		Category:    c.Query("category"),
		Search:      c.Query("search"),
	}))
}

// Update godoc
// @Summary      Editar entrada de catálogo
// @Tags         admin-master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID"
// @Param        body  body  dto.UpdateMasterDataRequest  true  "Cambios"
// @Success      200   {object}  dto.MasterDataResponse
// @Router       /api/admin/master-data/{id} [put]
func (h *MasterDataHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMasterDataRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Alternar Active/Inactive
// @Tags         admin-master-data
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.MasterDataResponse
// @Router       /api/admin/master-data/{id}/toggle [patch]
func (h *MasterDataHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada (requiere ?confirm=true)
// @Tags         admin-master-data
// @Security     Bearer
// @Param        id       path   string  true  "ID"
// @Param        confirm  query  bool    true  "Confirmación"
// @Success      204
// @Router       /api/admin/master-data/{id} [delete]
func (h *MasterDataHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), c.QueryBool("confirm")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Names godoc
// @Summary      Nombres activos de una categoría (listas del formulario de certificado)
// @Tags         master-data
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "exporters | treatments | branches"
// @Success      200       {array}   string
// @Router       /api/master-data/{category} [get]
func (h *MasterDataHandler) Names(c *fiber.Ctx) error {
	return c.JSON(h.uc.Names(c.Params("category")))
}

// SettingsHandler configuración del sistema y registro de actividad.
type SettingsHandler struct {
	settings *usecase.SettingsUseCase
	activity *usecase.ActivityUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(settings *usecase.SettingsUseCase, activity *usecase.ActivityUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings, activity: activity}
}

// Get godoc
// @Summary      Configuración actual
// @Tags         admin-settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/admin/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.settings.Get())
}

// Update godoc
// @Summary      Modificar configuración
// @Tags         admin-settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Cambios"
// @Success      200   {object}  dto.SettingsResponse
// @Router       /api/admin/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.settings.Update(actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Activity godoc
// @Summary      Registro de actividad
// @Tags         admin-settings
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "success | error | info | warning | all"
// @Success      200     {array}   dto.ActivityResponse
// @Router       /api/admin/activity [get]
func (h *SettingsHandler) Activity(c *fiber.Ctx) error {
	return c.JSON(h.activity.List(dto.ActivityFilter{PageRequest: page(c), Status: c.Query("status")}))
}
