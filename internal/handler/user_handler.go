package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"powerfed/internal/service"
)

// UserHandler handles administrative user CRUD endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents a user creation request.
type CreateUserRequest struct {
	Username string `json:"nombre_usuario" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"contrasena" validate:"required,min=6"`
	RoleID   uint   `json:"rol_id" validate:"required"`
}

// UpdateUserRequest represents a user update request. The password is
// re-hashed only when provided.
type UpdateUserRequest struct {
	Username string `json:"nombre_usuario"`
	Email    string `json:"email" validate:"omitempty,email"`
	RoleID   *uint  `json:"rol_id"`
	Active   *bool  `json:"activo"`
	Password string `json:"contrasena" validate:"omitempty,min=6"`
}

// List godoc
// @Summary List users with their role
// @Tags usuarios
// @Produce json
// @Success 200 {array} model.User
// @Router /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary Create a user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /usuarios [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Todos los campos son requeridos.")
	}

	user, err := h.userService.Create(c.Request().Context(), req.Username, req.Email, req.Password, req.RoleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Update a user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), id, req.Username, req.Email, req.RoleID, req.Active, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Usuario eliminado correctamente."})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// pathAthleteID parses the :atletaId route parameter.
func pathAthleteID(c echo.Context) (uint, error) {
	raw := c.Param("atletaId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid athlete id")
	}
	return uint(id), nil
}
