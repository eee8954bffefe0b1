package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"powerfed/internal/auth"
	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a user and mints a session token. Unknown email, wrong
// password and inactive account all surface the same credential error; the
// specific cause is only logged server-side.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("login rejected for %s: user lookup failed: %v", email, err)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !user.Active {
		log.Printf("login rejected for %s: user inactive", email)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("login rejected for %s: password mismatch", email)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		// Non-fatal: the stamp is informational.
		log.Printf("touch last login for user %d: %v", user.ID, err)
	}

	token, err := s.jwtService.Issue(user.ID, user.Email, user.RoleName())
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
