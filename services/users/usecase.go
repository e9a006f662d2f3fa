package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// UserUC defines the business logic for accounts and authentication.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nycrides/tripcast/services/users UserUC
type UserUC interface {
	// Register creates a new account and returns an access token for it.
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	// Login verifies credentials and returns an access token.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	// GetProfile returns the account for the given user ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
