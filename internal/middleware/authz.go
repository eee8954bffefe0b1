package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
)

// Operations gated by the capability table. Handlers never compare role
// strings themselves; every access decision goes through Allowed.
const (
	OpUsersManage       = "usuarios:manage"
	OpRolesRead         = "roles:read"
	OpAthletesRead      = "atletas:read"
	OpAthletesWrite     = "atletas:write"
	OpCoachesRead       = "entrenadores:read"
	OpCoachesWrite      = "entrenadores:write"
	OpCompetitionsRead  = "competencias:read"
	OpCompetitionsWrite = "competencias:write"
	OpResultsRead       = "resultados:read"
	OpResultsWrite      = "resultados:write"
	OpTrainingsRead     = "entrenamientos:read"
	OpTrainingsWrite    = "entrenamientos:write"
	OpPlansRead         = "planes:read"
	OpPlansWrite        = "planes:write"
)

// capabilities maps role name to its allowed operation set.
var capabilities = map[string]map[string]bool{
	model.RoleAdmin: allOps(),
	model.RoleCoach: opSet(
		OpRolesRead,
		OpAthletesRead, OpAthletesWrite,
		OpCoachesRead,
		OpCompetitionsRead,
		OpResultsRead,
		OpTrainingsRead, OpTrainingsWrite,
		OpPlansRead, OpPlansWrite,
	),
	model.RoleOrganizer: opSet(
		OpRolesRead,
		OpAthletesRead,
		OpCoachesRead,
		OpCompetitionsRead, OpCompetitionsWrite,
		OpResultsRead, OpResultsWrite,
		OpTrainingsRead,
	),
}

// Allowed is the single authorization decision point: it reports whether the
// role may perform the operation.
func Allowed(role, operation string) bool {
	return capabilities[role][operation]
}

// RequireCapability rejects with 403 when the authenticated role lacks the
// operation. It assumes LoadUser ran earlier in the chain.
func RequireCapability(operation string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authCtx, ok := CurrentUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrTokenRequired.Error()})
			}
			if !Allowed(authCtx.Role, operation) {
				return c.JSON(http.StatusForbidden, apperrors.ErrorResponse{Error: apperrors.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}

func opSet(ops ...string) map[string]bool {
	set := make(map[string]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}
	return set
}

func allOps() map[string]bool {
	return opSet(
		OpUsersManage, OpRolesRead,
		OpAthletesRead, OpAthletesWrite,
		OpCoachesRead, OpCoachesWrite,
		OpCompetitionsRead, OpCompetitionsWrite,
		OpResultsRead, OpResultsWrite,
		OpTrainingsRead, OpTrainingsWrite,
		OpPlansRead, OpPlansWrite,
	)
}
