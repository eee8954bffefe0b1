package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"powerfed/internal/model"
	"powerfed/internal/service"
)

// CoachHandler handles coach CRUD endpoints.
type CoachHandler struct {
	coachService service.CoachService
}

// NewCoachHandler creates a new coach handler.
func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// CoachRequest represents a coach create/update body.
type CoachRequest struct {
	FirstName  string `json:"nombre" validate:"required"`
	LastName   string `json:"apellido" validate:"required"`
	Experience string `json:"experiencia"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"telefono"`
}

func (r *CoachRequest) toModel() *model.Coach {
	return &model.Coach{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Experience: r.Experience,
		Email:      r.Email,
		Phone:      r.Phone,
	}
}

// List godoc
// @Summary List coaches
// @Tags entrenadores
// @Produce json
// @Success 200 {array} model.Coach
// @Router /entrenadores [get]
func (h *CoachHandler) List(c echo.Context) error {
	coaches, err := h.coachService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coaches)
}

// Get godoc
// @Summary Get one coach
// @Tags entrenadores
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} model.Coach
// @Failure 404 {object} errors.ErrorResponse
// @Router /entrenadores/{id} [get]
func (h *CoachHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	coach, err := h.coachService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, coach)
}

// Create godoc
// @Summary Register a coach
// @Tags entrenadores
// @Accept json
// @Produce json
// @Param request body CoachRequest true "Coach data"
// @Success 201 {object} model.Coach
// @Failure 400 {object} errors.ErrorResponse
// @Router /entrenadores [post]
func (h *CoachHandler) Create(c echo.Context) error {
	var req CoachRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coach := req.toModel()
	if err := h.coachService.Create(c.Request().Context(), coach); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, coach)
}

// Update godoc
// @Summary Update a coach
// @Tags entrenadores
// @Accept json
// @Produce json
// @Param id path int true "Coach ID"
// @Param request body CoachRequest true "Coach data"
// @Success 200 {object} model.Coach
// @Failure 404 {object} errors.ErrorResponse
// @Router /entrenadores/{id} [put]
func (h *CoachHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req CoachRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coach, err := h.coachService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, coach)
}

// Delete godoc
// @Summary Delete a coach
// @Tags entrenadores
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /entrenadores/{id} [delete]
func (h *CoachHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.coachService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Entrenador eliminado correctamente."})
}
