package router

import (
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"powerfed/internal/config"
	apperrors "powerfed/internal/errors"
	"powerfed/internal/handler"
	"powerfed/internal/middleware"
	"powerfed/internal/ratelimit"
	"powerfed/internal/repository"
)

// Register wires routes and middleware. The auth pipeline on the protected
// group is strictly sequential: rate limit, token verification, user load,
// capability gate, handler.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	limiter *ratelimit.Limiter,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	sessionHandler *handler.SessionHandler,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
	athleteHandler *handler.AthleteHandler,
	coachHandler *handler.CoachHandler,
	competitionHandler *handler.CompetitionHandler,
	resultHandler *handler.ResultHandler,
	trainingHandler *handler.TrainingHandler,
	planHandler *handler.PlanHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.Secure())
	e.Use(echomw.Gzip())
	e.Use(echomw.BodyLimit("10M"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, "X-Requested-With", echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.RateLimit(limiter))

	e.HTTPErrorHandler = newHTTPErrorHandler(cfg.IsProduction())
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/session", sessionHandler.CreateSession)
	api.POST("/auth/logout", sessionHandler.DestroySession)

	// Everything else under /api requires a verified token and an active user.
	secured := api.Group("", middleware.JWT(cfg.JWTSecret), middleware.LoadUser(userRepo))

	secured.GET("/usuarios", userHandler.List, middleware.RequireCapability(middleware.OpUsersManage))
	secured.POST("/usuarios", userHandler.Create, middleware.RequireCapability(middleware.OpUsersManage))
	secured.PUT("/usuarios/:id", userHandler.Update, middleware.RequireCapability(middleware.OpUsersManage))
	secured.DELETE("/usuarios/:id", userHandler.Delete, middleware.RequireCapability(middleware.OpUsersManage))

	secured.GET("/roles", roleHandler.List, middleware.RequireCapability(middleware.OpRolesRead))

	secured.GET("/atletas", athleteHandler.List, middleware.RequireCapability(middleware.OpAthletesRead))
	secured.GET("/atletas/:id", athleteHandler.Get, middleware.RequireCapability(middleware.OpAthletesRead))
	secured.POST("/atletas", athleteHandler.Create, middleware.RequireCapability(middleware.OpAthletesWrite))
	secured.PUT("/atletas/:id", athleteHandler.Update, middleware.RequireCapability(middleware.OpAthletesWrite))
	secured.DELETE("/atletas/:id", athleteHandler.Delete, middleware.RequireCapability(middleware.OpAthletesWrite))

	secured.GET("/entrenadores", coachHandler.List, middleware.RequireCapability(middleware.OpCoachesRead))
	secured.GET("/entrenadores/:id", coachHandler.Get, middleware.RequireCapability(middleware.OpCoachesRead))
	secured.POST("/entrenadores", coachHandler.Create, middleware.RequireCapability(middleware.OpCoachesWrite))
	secured.PUT("/entrenadores/:id", coachHandler.Update, middleware.RequireCapability(middleware.OpCoachesWrite))
	secured.DELETE("/entrenadores/:id", coachHandler.Delete, middleware.RequireCapability(middleware.OpCoachesWrite))

	secured.GET("/competencias", competitionHandler.List, middleware.RequireCapability(middleware.OpCompetitionsRead))
	secured.GET("/competencias/:id", competitionHandler.Get, middleware.RequireCapability(middleware.OpCompetitionsRead))
	secured.POST("/competencias", competitionHandler.Create, middleware.RequireCapability(middleware.OpCompetitionsWrite))
	secured.PUT("/competencias/:id", competitionHandler.Update, middleware.RequireCapability(middleware.OpCompetitionsWrite))
	secured.DELETE("/competencias/:id", competitionHandler.Delete, middleware.RequireCapability(middleware.OpCompetitionsWrite))

	secured.GET("/resultados", resultHandler.List, middleware.RequireCapability(middleware.OpResultsRead))
	secured.POST("/resultados", resultHandler.Create, middleware.RequireCapability(middleware.OpResultsWrite))
	secured.PUT("/resultados/:id", resultHandler.Update, middleware.RequireCapability(middleware.OpResultsWrite))
	secured.DELETE("/resultados/:id", resultHandler.Delete, middleware.RequireCapability(middleware.OpResultsWrite))

	secured.GET("/rendimiento/:atletaId", resultHandler.Performance, middleware.RequireCapability(middleware.OpResultsRead))

	secured.GET("/entrenamientos", trainingHandler.List, middleware.RequireCapability(middleware.OpTrainingsRead))
	secured.GET("/entrenamientos/:id", trainingHandler.Get, middleware.RequireCapability(middleware.OpTrainingsRead))
	secured.POST("/entrenamientos", trainingHandler.Create, middleware.RequireCapability(middleware.OpTrainingsWrite))
	secured.PUT("/entrenamientos/:id", trainingHandler.Update, middleware.RequireCapability(middleware.OpTrainingsWrite))
	secured.DELETE("/entrenamientos/:id", trainingHandler.Delete, middleware.RequireCapability(middleware.OpTrainingsWrite))

	secured.GET("/planes-alimentacion/:atletaId", planHandler.NutritionPlans, middleware.RequireCapability(middleware.OpPlansRead))
	secured.POST("/planes-alimentacion", planHandler.GenerateNutritionPlan, middleware.RequireCapability(middleware.OpPlansWrite))
	secured.GET("/planes-entrenamiento/:atletaId", planHandler.TrainingPlans, middleware.RequireCapability(middleware.OpPlansRead))
	secured.POST("/planes-entrenamiento", planHandler.GenerateTrainingPlan, middleware.RequireCapability(middleware.OpPlansWrite))
}

// newHTTPErrorHandler is the final error layer: expected HTTP errors pass
// through with their status, anything else is logged and surfaced as a
// generic 500. The real message leaks only outside production.
func newHTTPErrorHandler(isProduction bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if he, ok := err.(*echo.HTTPError); ok {
			message := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
			_ = c.JSON(he.Code, apperrors.ErrorResponse{Error: message})
			return
		}

		if httpErr := apperrors.MapErrorToHTTP(err); httpErr.StatusCode != http.StatusInternalServerError {
			_ = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
			return
		}

		log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		message := "Ocurrió un error inesperado."
		if !isProduction {
			message = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "Internal Server Error",
			"message": message,
		})
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
