package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// UserRepo defines the data access layer for accounts.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nycrides/tripcast/services/users UserRepo
type UserRepo interface {
	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns the account with the given email, or nil when
	// no such account exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns the account with the given ID, or nil when no
	// such account exists.
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
