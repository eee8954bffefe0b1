package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any login failure: unknown email,
	// wrong password or inactive user. The message is deliberately uniform so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	// ErrMissingCredentials is returned when the login body lacks required fields.
	ErrMissingCredentials = errors.New("Email y contraseña son requeridos")
	// ErrTokenRequired is returned when a protected request carries no token.
	ErrTokenRequired = errors.New("Token de acceso requerido")
	// ErrInvalidToken is returned for malformed, forged or expired tokens.
	ErrInvalidToken = errors.New("Token inválido o expirado")
	// ErrInactiveUser is returned when the token's user no longer exists or is disabled.
	ErrInactiveUser = errors.New("Usuario no válido o inactivo")
	// ErrDuplicateUser is returned when email or username already exists.
	ErrDuplicateUser = errors.New("El email o nombre de usuario ya existe.")
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("Registro no encontrado")
	// ErrTooManyRequests is returned when the rate limit budget is exhausted.
	ErrTooManyRequests = errors.New("Demasiadas peticiones.")
	// ErrUnknownIP is returned when the client address cannot be determined.
	ErrUnknownIP = errors.New("Dirección IP no reconocida.")
	// ErrForbidden is returned when the authenticated role lacks a capability.
	ErrForbidden = errors.New("Operación no permitida para el rol")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_CREDENTIALS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrTokenRequired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_REQUIRED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrInactiveUser):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INACTIVE_USER")
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USER")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrTooManyRequests):
		return NewHTTPError(http.StatusTooManyRequests, err.Error(), "TOO_MANY_REQUESTS")
	case errors.Is(err, ErrUnknownIP):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNRECOGNIZED_IP")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
