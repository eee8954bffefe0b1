package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"powerfed/internal/repository"
)

// RoleHandler serves the read-only roles endpoint.
type RoleHandler struct {
	roleRepo repository.RoleRepository
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(roleRepo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{roleRepo: roleRepo}
}

// List godoc
// @Summary List roles ordered by id
// @Tags roles
// @Produce json
// @Success 200 {array} model.Role
// @Router /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleRepo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}
