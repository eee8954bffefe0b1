package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.Issue(42, "admin@powerlifting.com", "Administrador")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@powerlifting.com", claims.Email)
	assert.Equal(t, "Administrador", claims.Role)
}

func TestJWTService_Issue_NoSecret(t *testing.T) {
	service := NewJWTService("")

	token, err := service.Issue(1, "user@example.com", "Entrenador")
	assert.ErrorIs(t, err, ErrNoSecret)
	assert.Empty(t, token)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	token, err := issuer.Issue(1, "user@example.com", "Entrenador")
	assert.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	service := NewJWTService("test-secret")

	claims, err := service.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	service := NewJWTService("test-secret")

	issued := time.Now()
	service.now = func() time.Time { return issued }

	token, err := service.Issue(7, "user@example.com", "Organizador")
	assert.NoError(t, err)

	// Still valid just before the 24h mark.
	service.now = func() time.Time { return issued.Add(TokenExpiry - time.Minute) }
	claims, err := service.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)

	// Rejected once expiry has passed.
	service.now = func() time.Time { return issued.Add(TokenExpiry + time.Minute) }
	claims, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
