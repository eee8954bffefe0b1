package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"powerfed/internal/auth"
	"powerfed/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const testSecret = "test-secret"

func protectedEcho(repo *MockUserRepository) *echo.Echo {
	e := echo.New()
	group := e.Group("/api", JWT(testSecret), LoadUser(repo))
	group.GET("/ping", func(c echo.Context) error {
		authCtx, _ := CurrentUser(c)
		return c.JSON(http.StatusOK, authCtx)
	})
	return e
}

func issueToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).Issue(userID, "user@powerlifting.com", role)
	assert.NoError(t, err)
	return token
}

func TestJWT_MissingToken(t *testing.T) {
	e := protectedEcho(new(MockUserRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token de acceso requerido"}`, rec.Body.String())
}

func TestJWT_InvalidToken(t *testing.T) {
	e := protectedEcho(new(MockUserRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token inválido o expirado"}`, rec.Body.String())
}

func TestJWT_ForgedToken(t *testing.T) {
	e := protectedEcho(new(MockUserRepository))

	forged, err := auth.NewJWTService("other-secret").Issue(1, "user@powerlifting.com", model.RoleAdmin)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+forged)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token inválido o expirado"}`, rec.Body.String())
}

func TestLoadUser_ActiveUserPasses(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
		ID:     1,
		Email:  "user@powerlifting.com",
		Active: true,
		Role:   &model.Role{ID: 2, Name: model.RoleCoach},
	}, nil)

	e := protectedEcho(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, 1, model.RoleCoach))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rol":"Entrenador"`)
	repo.AssertExpectations(t)
}

func TestLoadUser_CookieTokenAccepted(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
		ID:     1,
		Email:  "user@powerlifting.com",
		Active: true,
		Role:   &model.Role{ID: 1, Name: model.RoleAdmin},
	}, nil)

	e := protectedEcho(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueToken(t, 1, model.RoleAdmin)})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestLoadUser_InactiveUserRejected(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
		ID:     1,
		Email:  "user@powerlifting.com",
		Active: false,
	}, nil)

	e := protectedEcho(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, 1, model.RoleCoach))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Usuario no válido o inactivo"}`, rec.Body.String())
	repo.AssertExpectations(t)
}

func TestLoadUser_DeletedUserRejected(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	e := protectedEcho(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, 9, model.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Usuario no válido o inactivo"}`, rec.Body.String())
	repo.AssertExpectations(t)
}
