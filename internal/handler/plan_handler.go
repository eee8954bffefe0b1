package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"powerfed/internal/service"
)

// PlanHandler handles AI-assisted plan generation endpoints.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GenerateNutritionPlan godoc
// @Summary Generate a nutrition plan for an athlete
// @Tags planes
// @Accept json
// @Produce json
// @Param request body service.NutritionPlanRequest true "Plan parameters"
// @Success 201 {object} model.NutritionPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /planes-alimentacion [post]
func (h *PlanHandler) GenerateNutritionPlan(c echo.Context) error {
	var req service.NutritionPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.planService.GenerateNutritionPlan(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// NutritionPlans godoc
// @Summary List an athlete's nutrition plans
// @Tags planes
// @Produce json
// @Param atletaId path int true "Athlete ID"
// @Success 200 {array} model.NutritionPlan
// @Router /planes-alimentacion/{atletaId} [get]
func (h *PlanHandler) NutritionPlans(c echo.Context) error {
	athleteID, err := pathAthleteID(c)
	if err != nil {
		return err
	}
	plans, err := h.planService.NutritionPlans(c.Request().Context(), athleteID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// GenerateTrainingPlan godoc
// @Summary Generate a training plan for an athlete
// @Tags planes
// @Accept json
// @Produce json
// @Param request body service.TrainingPlanRequest true "Plan parameters"
// @Success 201 {object} model.TrainingPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /planes-entrenamiento [post]
func (h *PlanHandler) GenerateTrainingPlan(c echo.Context) error {
	var req service.TrainingPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.planService.GenerateTrainingPlan(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// TrainingPlans godoc
// @Summary List an athlete's training plans
// @Tags planes
// @Produce json
// @Param atletaId path int true "Athlete ID"
// @Success 200 {array} model.TrainingPlan
// @Router /planes-entrenamiento/{atletaId} [get]
func (h *PlanHandler) TrainingPlans(c echo.Context) error {
	athleteID, err := pathAthleteID(c)
	if err != nil {
		return err
	}
	plans, err := h.planService.TrainingPlans(c.Request().Context(), athleteID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}
