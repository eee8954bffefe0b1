package middleware

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/repository"
)

// ContextAuthKey is the echo context key holding the per-request AuthContext.
const ContextAuthKey = "auth_context"

// SessionCookieName is the cookie the session bridge writes and the
// middleware accepts as a token source.
const SessionCookieName = "token"

// AuthContext is the per-request authorization context attached after a
// successful token verification and user load.
type AuthContext struct {
	ID       uint           `json:"id"`
	Email    string         `json:"email"`
	Role     string         `json:"rol"`
	Permisos map[string]any `json:"permisos"`
}

// JWT returns the token extraction/verification stage of the auth pipeline.
// Tokens are read from the Authorization header or the session cookie. A
// missing token and an invalid one are reported with distinct messages, but
// signature, malformation and expiry failures are never distinguished.
func JWT(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + SessionCookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			var extractionErr *echojwt.TokenExtractionError
			if errors.As(err, &extractionErr) {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrTokenRequired.Error()})
			}
			log.Printf("auth middleware: token rejected: %v", err)
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrInvalidToken.Error()})
		},
	})
}

// LoadUser re-fetches the token's user joined with its role and attaches the
// authorization context. Deleted and deactivated users are rejected even when
// the token itself still validates.
func LoadUser(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := tokenUserID(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrInvalidToken.Error()})
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("auth middleware: load user %d: %v", userID, err)
				}
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrInactiveUser.Error()})
			}
			if !user.Active {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrInactiveUser.Error()})
			}

			permisos := map[string]any{}
			if user.Role != nil && user.Role.Permisos != "" {
				// Free-form permission data; a malformed blob degrades to empty.
				_ = json.Unmarshal([]byte(user.Role.Permisos), &permisos)
			}

			c.Set(ContextAuthKey, &AuthContext{
				ID:       user.ID,
				Email:    user.Email,
				Role:     user.RoleName(),
				Permisos: permisos,
			})
			return next(c)
		}
	}
}

// CurrentUser returns the authorization context attached by LoadUser.
func CurrentUser(c echo.Context) (*AuthContext, bool) {
	authCtx, ok := c.Get(ContextAuthKey).(*AuthContext)
	return authCtx, ok
}

// tokenUserID pulls the user id claim from the verified token.
func tokenUserID(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
