package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/service"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"contrasena" validate:"required"`
}

// LoginUser is the user projection returned on login.
type LoginUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// Login godoc
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrMissingCredentials)
	}
	if req.Email == "" || req.Password == "" {
		return respondError(c, apperrors.ErrMissingCredentials)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User: LoginUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.RoleName(),
		},
	})
}

// respondError translates a domain error into the standard wire shape.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		// Let the central error handler log and shape unexpected failures.
		return err
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
