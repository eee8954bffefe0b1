package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"powerfed/internal/model"
	"powerfed/internal/service"
)

// ResultHandler handles competition result endpoints.
type ResultHandler struct {
	resultService      service.ResultService
	performanceService service.PerformanceService
}

// NewResultHandler creates a new result handler.
func NewResultHandler(resultService service.ResultService, performanceService service.PerformanceService) *ResultHandler {
	return &ResultHandler{
		resultService:      resultService,
		performanceService: performanceService,
	}
}

// ResultRequest represents a result create/update body. Total and Wilks are
// derived server-side and ignored when supplied.
type ResultRequest struct {
	CompetitionID  uint    `json:"competencia_id" validate:"required"`
	AthleteID      uint    `json:"atleta_id" validate:"required"`
	Squat          float64 `json:"sentadilla" validate:"gte=0"`
	BenchPress     float64 `json:"press_banca" validate:"gte=0"`
	Deadlift       float64 `json:"peso_muerto" validate:"gte=0"`
	WeightCategory float64 `json:"categoria_peso" validate:"required,gt=0"`
}

func (r *ResultRequest) toModel() *model.Result {
	return &model.Result{
		CompetitionID:  r.CompetitionID,
		AthleteID:      r.AthleteID,
		Squat:          r.Squat,
		BenchPress:     r.BenchPress,
		Deadlift:       r.Deadlift,
		WeightCategory: r.WeightCategory,
	}
}

// List godoc
// @Summary List results
// @Tags resultados
// @Produce json
// @Success 200 {array} model.Result
// @Router /resultados [get]
func (h *ResultHandler) List(c echo.Context) error {
	results, err := h.resultService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// Create godoc
// @Summary Record a result
// @Tags resultados
// @Accept json
// @Produce json
// @Param request body ResultRequest true "Lifts"
// @Success 201 {object} model.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resultados [post]
func (h *ResultHandler) Create(c echo.Context) error {
	var req ResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result := req.toModel()
	if err := h.resultService.Create(c.Request().Context(), result); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// Update godoc
// @Summary Update a result
// @Tags resultados
// @Accept json
// @Produce json
// @Param id path int true "Result ID"
// @Param request body ResultRequest true "Lifts"
// @Success 200 {object} model.Result
// @Failure 404 {object} errors.ErrorResponse
// @Router /resultados/{id} [put]
func (h *ResultHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.resultService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a result
// @Tags resultados
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /resultados/{id} [delete]
func (h *ResultHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.resultService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Resultado eliminado correctamente."})
}

// Performance godoc
// @Summary Athlete performance history
// @Tags rendimiento
// @Produce json
// @Param atletaId path int true "Athlete ID"
// @Success 200 {array} repository.PerformanceRow
// @Router /rendimiento/{atletaId} [get]
func (h *ResultHandler) Performance(c echo.Context) error {
	athleteID, err := pathAthleteID(c)
	if err != nil {
		return err
	}
	rows, err := h.performanceService.History(c.Request().Context(), athleteID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
