package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"powerfed/internal/model"
	"powerfed/internal/service"
)

// CompetitionHandler handles competition CRUD endpoints.
type CompetitionHandler struct {
	competitionService service.CompetitionService
}

// NewCompetitionHandler creates a new competition handler.
func NewCompetitionHandler(competitionService service.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitionService: competitionService}
}

// CompetitionRequest represents a competition create/update body.
type CompetitionRequest struct {
	Name      string `json:"nombre" validate:"required"`
	Date      string `json:"fecha" validate:"required"`
	Location  string `json:"ubicacion"`
	Type      string `json:"tipo" validate:"omitempty,oneof=Nacional Internacional Regional"`
	Organizer string `json:"organizador"`
}

func (r *CompetitionRequest) toModel() *model.Competition {
	return &model.Competition{
		Name:      r.Name,
		Date:      r.Date,
		Location:  r.Location,
		Type:      r.Type,
		Organizer: r.Organizer,
	}
}

// List godoc
// @Summary List competitions ordered by date
// @Tags competencias
// @Produce json
// @Success 200 {array} model.Competition
// @Router /competencias [get]
func (h *CompetitionHandler) List(c echo.Context) error {
	competitions, err := h.competitionService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, competitions)
}

// Get godoc
// @Summary Get one competition
// @Tags competencias
// @Produce json
// @Param id path int true "Competition ID"
// @Success 200 {object} model.Competition
// @Failure 404 {object} errors.ErrorResponse
// @Router /competencias/{id} [get]
func (h *CompetitionHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	competition, err := h.competitionService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, competition)
}

// Create godoc
// @Summary Schedule a competition
// @Tags competencias
// @Accept json
// @Produce json
// @Param request body CompetitionRequest true "Competition data"
// @Success 201 {object} model.Competition
// @Failure 400 {object} errors.ErrorResponse
// @Router /competencias [post]
func (h *CompetitionHandler) Create(c echo.Context) error {
	var req CompetitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	competition := req.toModel()
	if err := h.competitionService.Create(c.Request().Context(), competition); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, competition)
}

// Update godoc
// @Summary Update a competition
// @Tags competencias
// @Accept json
// @Produce json
// @Param id path int true "Competition ID"
// @Param request body CompetitionRequest true "Competition data"
// @Success 200 {object} model.Competition
// @Failure 404 {object} errors.ErrorResponse
// @Router /competencias/{id} [put]
func (h *CompetitionHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req CompetitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	competition, err := h.competitionService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, competition)
}

// Delete godoc
// @Summary Delete a competition
// @Tags competencias
// @Produce json
// @Param id path int true "Competition ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /competencias/{id} [delete]
func (h *CompetitionHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.competitionService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Competencia eliminada correctamente."})
}
