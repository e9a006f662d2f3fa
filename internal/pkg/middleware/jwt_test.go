package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/nycrides/tripcast/internal/pkg/jwt"
	"github.com/nycrides/tripcast/internal/pkg/models"
)

func jwtTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tripcast-test",
		},
	}
}

func runJWTMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTAuthMiddleware(jwtTestConfig().JWT)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "rider@example.com", models.RoleUser, jwtTestConfig())
	require.NoError(t, err)

	rec, c := runJWTMiddleware(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("user_id"))
	assert.Equal(t, models.RoleUser, c.Get("user_role"))
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := runJWTMiddleware(t, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	handler := RequireRole(models.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Admin passes
	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_role", models.RoleAdmin)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Regular user is rejected
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/analytics", nil), rec)
	c.Set("user_role", models.RoleUser)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Missing role is rejected
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/analytics", nil), rec)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
