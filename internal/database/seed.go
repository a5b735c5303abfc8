package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crud-backend/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUser describes a user row created by the seeder with a plain password.
type SeedUser struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
}

// DefaultUsers is the fixture set used by cmd/seed and local development.
var DefaultUsers = []SeedUser{
	{Name: "test", Email: "test@test.com", Password: "test", Role: models.RoleAdmin},
}

// SeedUsers inserts the given users, skipping any email that already exists.
func SeedUsers(ctx context.Context, db *gorm.DB, users []SeedUser) (int, error) {
	created := 0
	for _, u := range users {
		var existing models.User
		err := db.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			log.Info().Str("email", u.Email).Msg("Kullanıcı zaten var, atlanıyor")
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("kullanıcı kontrol edilemedi: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, fmt.Errorf("şifre hashlenemedi: %w", err)
		}

		now := time.Now()
		user := models.User{
			Name:            u.Name,
			Email:           u.Email,
			PasswordHash:    string(hash),
			Role:            u.Role,
			EmailVerifiedAt: &now,
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return created, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
		}
		created++
	}
	return created, nil
}
