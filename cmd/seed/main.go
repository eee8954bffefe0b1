package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"powerfed/internal/config"
	"powerfed/internal/db"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

const (
	adminEmail    = "admin@powerlifting.com"
	adminUsername = "admin"
	adminPassword = "password"
)

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Role{}, &model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	adminRole, err := seedRoles(ctx, roleRepo)
	if err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	if err := seedAdminUser(ctx, userRepo, adminRole); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Admin login: %s / %s", adminEmail, adminPassword)
}

// seedRoles creates the canonical roles when missing and returns the admin role.
func seedRoles(ctx context.Context, repo repository.RoleRepository) (*model.Role, error) {
	names := []string{model.RoleAdmin, model.RoleCoach, model.RoleOrganizer}

	var admin *model.Role
	for _, name := range names {
		role, err := repo.FindByName(ctx, name)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("error checking role %s: %w", name, err)
			}
			role = &model.Role{Name: name}
			if err := repo.Create(ctx, role); err != nil {
				return nil, fmt.Errorf("error creating role %s: %w", name, err)
			}
			log.Printf("Created role: %s", name)
		}
		if name == model.RoleAdmin {
			admin = role
		}
	}
	return admin, nil
}

// seedAdminUser creates the initial administrator account when missing.
func seedAdminUser(ctx context.Context, repo repository.UserRepository, adminRole *model.Role) error {
	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking admin user: %w", err)
	}
	if existing != nil {
		log.Println("Admin user already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &model.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: string(hash),
		RoleID:       &adminRole.ID,
		Active:       true,
	}
	if err := repo.Create(ctx, user); err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}
	log.Printf("Created admin user: %s", adminEmail)
	return nil
}
