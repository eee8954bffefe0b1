package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

const bcryptCost = 10

// UserService handles administrative user CRUD.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, username, email, password string, roleID uint) (*model.User, error)
	Update(ctx context.Context, id uint, username, email string, roleID *uint, active *bool, password string) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Create registers a new user with a freshly hashed password.
func (s *userService) Create(ctx context.Context, username, email, password string, roleID uint) (*model.User, error) {
	if taken, err := s.identityTaken(ctx, username, email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		RoleID:       &roleID,
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update mutates profile, role and status fields. The password is re-hashed
// only when a new one is provided.
func (s *userService) Update(ctx context.Context, id uint, username, email string, roleID *uint, active *bool, password string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if username != "" || email != "" {
		checkUsername := username
		if checkUsername == "" {
			checkUsername = user.Username
		}
		checkEmail := email
		if checkEmail == "" {
			checkEmail = user.Email
		}
		if taken, err := s.identityTaken(ctx, checkUsername, checkEmail, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.ErrDuplicateUser
		}
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	if roleID != nil {
		user.RoleID = roleID
		user.Role = nil
	}
	if active != nil {
		user.Active = *active
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

// identityTaken reports whether username or email belongs to a different user.
func (s *userService) identityTaken(ctx context.Context, username, email string, selfID uint) (bool, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil && existing.ID != selfID {
		return true, nil
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("check email: %w", err)
	}

	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil && existing.ID != selfID {
		return true, nil
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("check username: %w", err)
	}
	return false, nil
}
