package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/services/users"
)

type userRepo struct {
	db *database.PostgresClient
}

// NewUserRepo creates a postgres-backed user repository
func NewUserRepo(db *database.PostgresClient) users.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, email, hashed_password, full_name, role, is_active,
			created_at, updated_at
		) VALUES (
			:id, :email, :hashed_password, :full_name, :role, :is_active,
			NOW(), NOW()
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, hashed_password, full_name, role, is_active,
		       created_at, updated_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := r.db.GetDB().GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, hashed_password, full_name, role, is_active,
		       created_at, updated_at
		FROM users
		WHERE id = $1`

	var user models.User
	err := r.db.GetDB().GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}
