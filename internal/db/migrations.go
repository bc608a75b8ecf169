package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"visionguard-service/internal/config"
	"visionguard-service/internal/model"
	"visionguard-service/internal/repository"
)

func migrate(database *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	err := database.AutoMigrate(
		&model.User{},
		&model.Worker{},
		&model.Camera{},
		&model.Violation{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if cfg.Environment == "development" {
		if err := seedDefaultUsers(database, log); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}
	return nil
}

// seedDefaultUsers creates one supervisor and one HR account on an empty
// development database so the API is usable right after first start.
func seedDefaultUsers(database *gorm.DB, log zerolog.Logger) error {
	ctx := context.Background()
	users := repository.NewUserRepository(database)

	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		username string
		role     model.Role
	}{
		{"supervisor", model.RoleSupervisor},
		{"hr", model.RoleHR},
	}

	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := model.User{
			Username:     d.username,
			PasswordHash: string(hash),
			Role:         d.role,
			IsActive:     true,
		}
		if err := users.Create(ctx, &user); err != nil {
			return err
		}
		log.Warn().Str("username", d.username).Msg("seeded default user with placeholder password")
	}
	return nil
}
