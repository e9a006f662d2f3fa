package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tripcast-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	cfg := testConfig()

	token, expiresAt, err := GenerateToken(userID, "rider@example.com", models.RoleUser, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "rider@example.com", (*claims)["email"])
	assert.Equal(t, models.RoleUser, (*claims)["role"])
	assert.Equal(t, "tripcast-test", (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "rider@example.com", models.RoleUser, testConfig())
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
