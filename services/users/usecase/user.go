package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nycrides/tripcast/internal/pkg/apperrors"
	"github.com/nycrides/tripcast/internal/pkg/jwt"
	"github.com/nycrides/tripcast/internal/pkg/logger"
	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/services/users"
)

const minPasswordLength = 8

// ErrInvalidCredentials is returned when login fails, without revealing
// whether the email or the password was wrong.
var ErrInvalidCredentials = apperrors.New(apperrors.KindValidation, "invalid email or password")

type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates the user usecase
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

func (uc *userUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "UserUC.Register"); segment != nil {
		defer segment.End()
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.New(apperrors.KindValidation, "a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.Newf(apperrors.KindValidation,
			"password must be at least %d characters", minPasswordLength)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.KindValidation, "email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       strings.TrimSpace(req.FullName),
		Role:           models.RoleUser,
		IsActive:       true,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered", logger.String("user_id", user.ID.String()))
	return uc.issueToken(user)
}

func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "UserUC.Login"); segment != nil {
		defer segment.End()
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if segment := nrpkg.StartSegment(nrpkg.FromContext(ctx), "UserUC.GetProfile"); segment != nil {
		defer segment.End()
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "user not found")
	}
	return user, nil
}

func (uc *userUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.cfg)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
