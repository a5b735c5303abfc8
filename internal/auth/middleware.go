package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserRoleKey = "user_role"

	MessageUnauthenticated = "Unauthenticated."
)

// Middleware validates bearer tokens. It is built once from config and
// installed on the protected route group.
type Middleware struct {
	secret []byte
}

func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: []byte(secret)}
}

func (m *Middleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, MessageUnauthenticated)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, MessageUnauthenticated)
		}

		claims, err := m.parse(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, MessageUnauthenticated)
		}

		p := Principal{UserID: claims.UserID, Name: claims.Name, Email: claims.Email, Role: claims.Role}
		c.Locals(CtxUserIDKey, p.UserID)
		c.Locals(CtxUserRoleKey, p.Role)
		c.SetUserContext(WithPrincipal(c.UserContext(), p))

		return c.Next()
	}
}

func (m *Middleware) parse(tokenStr string) (*JWTCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("geçersiz imzalama yöntemi: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("geçersiz veya süresi dolmuş token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("geçersiz token")
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok {
		return nil, errors.New("token çözümlenemedi")
	}
	return claims, nil
}
