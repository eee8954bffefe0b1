package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"powerfed/internal/model"
	"powerfed/internal/service"
)

// TrainingHandler handles training session CRUD endpoints.
type TrainingHandler struct {
	trainingService service.TrainingService
}

// NewTrainingHandler creates a new training handler.
func NewTrainingHandler(trainingService service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// TrainingRequest represents a training create/update body.
type TrainingRequest struct {
	AthleteID   uint   `json:"atleta_id" validate:"required"`
	Date        string `json:"fecha" validate:"required"`
	Description string `json:"descripcion" validate:"required"`
	Duration    int    `json:"duracion" validate:"required,gt=0"`
	Intensity   string `json:"intensidad" validate:"required,oneof=Baja Media Alta"`
}

func (r *TrainingRequest) toModel() *model.Training {
	return &model.Training{
		AthleteID:   r.AthleteID,
		Date:        r.Date,
		Description: r.Description,
		Duration:    r.Duration,
		Intensity:   r.Intensity,
	}
}

// List godoc
// @Summary List training sessions
// @Tags entrenamientos
// @Produce json
// @Param atleta_id query int false "Filter by athlete"
// @Success 200 {array} model.Training
// @Router /entrenamientos [get]
func (h *TrainingHandler) List(c echo.Context) error {
	if raw := c.QueryParam("atleta_id"); raw != "" {
		athleteID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid athlete id")
		}
		trainings, err := h.trainingService.ListByAthlete(c.Request().Context(), uint(athleteID))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, trainings)
	}

	trainings, err := h.trainingService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainings)
}

// Get godoc
// @Summary Get one training session
// @Tags entrenamientos
// @Produce json
// @Param id path int true "Training ID"
// @Success 200 {object} model.Training
// @Failure 404 {object} errors.ErrorResponse
// @Router /entrenamientos/{id} [get]
func (h *TrainingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	training, err := h.trainingService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, training)
}

// Create godoc
// @Summary Log a training session
// @Tags entrenamientos
// @Accept json
// @Produce json
// @Param request body TrainingRequest true "Training data"
// @Success 201 {object} model.Training
// @Failure 400 {object} errors.ErrorResponse
// @Router /entrenamientos [post]
func (h *TrainingHandler) Create(c echo.Context) error {
	var req TrainingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	training := req.toModel()
	if err := h.trainingService.Create(c.Request().Context(), training); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, training)
}

// Update godoc
// @Summary Update a training session
// @Tags entrenamientos
// @Accept json
// @Produce json
// @Param id path int true "Training ID"
// @Param request body TrainingRequest true "Training data"
// @Success 200 {object} model.Training
// @Failure 404 {object} errors.ErrorResponse
// @Router /entrenamientos/{id} [put]
func (h *TrainingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req TrainingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	training, err := h.trainingService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, training)
}

// Delete godoc
// @Summary Delete a training session
// @Tags entrenamientos
// @Produce json
// @Param id path int true "Training ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /entrenamientos/{id} [delete]
func (h *TrainingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.trainingService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Entrenamiento eliminado correctamente."})
}
