package auth

import (
	"errors"
	"strings"
	"time"

	"crud-backend/internal/apierror"
	"crud-backend/internal/models"
	"crud-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MessageLoginValidation    = "validation error"
	MessageInvalidCredentials = "Invalid credentials"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Role            models.UserRole `json:"role"`
	EmailVerifiedAt *time.Time      `json:"email_verified_at"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		EmailVerifiedAt: u.EmailVerifiedAt,
	}
}

// POST /api/auth/login
func LoginHandler(db *gorm.DB, v *validation.Validator, issuer *TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := validation.BindJSON(c, &body); err != nil {
			return loginValidationError(c, err)
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if err := v.Struct(c.UserContext(), &body); err != nil {
			return loginValidationError(c, err)
		}

		var user models.User
		err := db.WithContext(c.UserContext()).Where("email = ?", body.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, MessageInvalidCredentials)
		}
		if err != nil {
			return err
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, MessageInvalidCredentials)
		}

		token, err := issuer.Issue(&user)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  toUserResponse(user),
		})
	}
}

// Login eski istemcilerle uyumlu zarfı kullanır: errors yerine data
func loginValidationError(c *fiber.Ctx, err error) error {
	var verr *apierror.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": MessageLoginValidation,
			"data":    verr.Errors,
		})
	}
	return err
}

// GET /api/auth/me
func MeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := PrincipalFrom(c.UserContext())
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, MessageUnauthenticated)
		}

		var user models.User
		if err := db.WithContext(c.UserContext()).First(&user, p.UserID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Kullanıcı silinmiş olabilir, token'daki bilgiyi döndür
			return c.JSON(fiber.Map{"data": p})
		}

		return c.JSON(fiber.Map{"data": toUserResponse(user)})
	}
}
