package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"powerfed/internal/auth"
	apperrors "powerfed/internal/errors"
	"powerfed/internal/middleware"
)

// SessionHandler bridges a verified bearer token into an HTTP-only session
// cookie for browser clients. No server-side session record exists; the
// cookie is the client's copy of the capability.
type SessionHandler struct {
	secureCookies bool
}

// NewSessionHandler creates a new session handler. secureCookies should be
// true in production deployments.
func NewSessionHandler(secureCookies bool) *SessionHandler {
	return &SessionHandler{secureCookies: secureCookies}
}

// SessionRequest represents a session creation request.
type SessionRequest struct {
	Token string `json:"token" validate:"required"`
}

// CreateSession godoc
// @Summary Store the session token in an HTTP-only cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SessionRequest true "Session token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/session [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Token no proporcionado."})
	}

	// Cookie lifetime is derived from the token expiry so both die together.
	c.SetCookie(h.sessionCookie(req.Token, int(auth.TokenExpiry.Seconds())))
	return c.JSON(http.StatusOK, map[string]string{"message": "Sesión iniciada correctamente."})
}

// DestroySession godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *SessionHandler) DestroySession(c echo.Context) error {
	// Overwrite with an immediately-expiring empty value.
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, map[string]string{"message": "Sesión cerrada"})
}

func (h *SessionHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
