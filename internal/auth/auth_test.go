package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crud-backend/internal/apierror"
	"crud-backend/internal/auth"
	"crud-backend/internal/database"
	"crud-backend/internal/database/dbtest"
	"crud-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	db := dbtest.New(t)
	_, err := database.SeedUsers(t.Context(), db, database.DefaultUsers)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apierror.Handler})
	issuer := auth.NewTokenIssuer(testSecret, time.Hour)
	mw := auth.NewMiddleware(testSecret)

	app.Post("/login", auth.LoginHandler(db, validation.New(db), issuer))
	app.Get("/me", mw.Handler(), auth.MeHandler(db))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App, email, password string) (int, map[string]any) {
	return doJSON(t, app, http.MethodPost, "/login", "", map[string]string{"email": email, "password": password})
}

func TestLogin_Success(t *testing.T) {
	app := newAuthApp(t)

	status, body := login(t, app, "Test@Test.com ", "test")

	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "test@test.com", user["email"])
	assert.Equal(t, "admin", user["role"])
	assert.NotContains(t, user, "password_hash")
}

func TestLogin_ValidationError(t *testing.T) {
	app := newAuthApp(t)

	status, body := login(t, app, "not-an-email", "")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation error", body["message"])
	assert.Equal(t, map[string]any{
		"email":    []any{"The email field must be a valid email address."},
		"password": []any{"The password field is required."},
	}, body["data"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := newAuthApp(t)

	status, body := login(t, app, "test@test.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["message"])

	status, _ = login(t, app, "nobody@test.com", "test")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestMe_WithIssuedToken(t *testing.T) {
	app := newAuthApp(t)
	_, body := login(t, app, "test@test.com", "test")
	token := body["token"].(string)

	status, me := doJSON(t, app, http.MethodGet, "/me", token, nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "test", me["data"].(map[string]any)["name"])
}

func TestMiddleware_RejectsBadTokens(t *testing.T) {
	app := newAuthApp(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.JWTCustomClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredStr, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	otherKey := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.JWTCustomClaims{UserID: 1})
	otherKeyStr, err := otherKey.SignedString([]byte("another_secret_that_is_long_enough!!"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"missing":   "",
		"garbage":   "abc.def.ghi",
		"expired":   expiredStr,
		"other key": otherKeyStr,
	} {
		status, body := doJSON(t, app, http.MethodGet, "/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, status, name)
		assert.Equal(t, "Unauthenticated.", body["message"], name)
	}
}

func TestMiddleware_RejectsNonBearerScheme(t *testing.T) {
	app := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic dGVzdDp0ZXN0")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
