package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"powerfed/internal/auth"
	"powerfed/internal/middleware"
)

func serveSession(t *testing.T, h *SessionHandler, method, path, body string, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, fn(c))
	return rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSessionHandler_CreateSession(t *testing.T) {
	h := NewSessionHandler(false)

	rec := serveSession(t, h, http.MethodPost, "/api/auth/session", `{"token":"abc123"}`, h.CreateSession)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sesión iniciada correctamente.")

	cookie := sessionCookieFrom(t, rec)
	assert.Equal(t, "abc123", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int(auth.TokenExpiry.Seconds()), cookie.MaxAge)
}

func TestSessionHandler_CreateSession_SecureInProduction(t *testing.T) {
	h := NewSessionHandler(true)

	rec := serveSession(t, h, http.MethodPost, "/api/auth/session", `{"token":"abc123"}`, h.CreateSession)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sessionCookieFrom(t, rec).Secure)
}

func TestSessionHandler_CreateSession_MissingToken(t *testing.T) {
	h := NewSessionHandler(false)

	rec := serveSession(t, h, http.MethodPost, "/api/auth/session", `{}`, h.CreateSession)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Token no proporcionado."}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionHandler_DestroySession(t *testing.T) {
	h := NewSessionHandler(false)

	rec := serveSession(t, h, http.MethodPost, "/api/auth/logout", "", h.DestroySession)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sesión cerrada")

	cookie := sessionCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	assert.True(t, cookie.HttpOnly)
}
