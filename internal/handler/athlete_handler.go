package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"powerfed/internal/model"
	"powerfed/internal/service"
)

// AthleteHandler handles athlete CRUD endpoints.
type AthleteHandler struct {
	athleteService service.AthleteService
}

// NewAthleteHandler creates a new athlete handler.
func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// AthleteRequest represents an athlete create/update body.
type AthleteRequest struct {
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellido" validate:"required"`
	BirthDate string `json:"fecha_nacimiento"`
	Gender    string `json:"genero" validate:"omitempty,oneof=Masculino Femenino"`
	Country   string `json:"pais"`
	City      string `json:"ciudad"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"telefono"`
}

func (r *AthleteRequest) toModel() *model.Athlete {
	return &model.Athlete{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Gender:    r.Gender,
		Country:   r.Country,
		City:      r.City,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// List godoc
// @Summary List athletes
// @Tags atletas
// @Produce json
// @Success 200 {array} model.Athlete
// @Router /atletas [get]
func (h *AthleteHandler) List(c echo.Context) error {
	athletes, err := h.athleteService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, athletes)
}

// Get godoc
// @Summary Get one athlete
// @Tags atletas
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} model.Athlete
// @Failure 404 {object} errors.ErrorResponse
// @Router /atletas/{id} [get]
func (h *AthleteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	athlete, err := h.athleteService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, athlete)
}

// Create godoc
// @Summary Register an athlete
// @Tags atletas
// @Accept json
// @Produce json
// @Param request body AthleteRequest true "Athlete data"
// @Success 201 {object} model.Athlete
// @Failure 400 {object} errors.ErrorResponse
// @Router /atletas [post]
func (h *AthleteHandler) Create(c echo.Context) error {
	var req AthleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	athlete := req.toModel()
	if err := h.athleteService.Create(c.Request().Context(), athlete); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, athlete)
}

// Update godoc
// @Summary Update an athlete
// @Tags atletas
// @Accept json
// @Produce json
// @Param id path int true "Athlete ID"
// @Param request body AthleteRequest true "Athlete data"
// @Success 200 {object} model.Athlete
// @Failure 404 {object} errors.ErrorResponse
// @Router /atletas/{id} [put]
func (h *AthleteHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req AthleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	athlete, err := h.athleteService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, athlete)
}

// Delete godoc
// @Summary Delete an athlete
// @Tags atletas
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /atletas/{id} [delete]
func (h *AthleteHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.athleteService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Atleta eliminado correctamente."})
}
