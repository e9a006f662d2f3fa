package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	"github.com/nycrides/tripcast/internal/utils"
	"github.com/nycrides/tripcast/services/users"
	"github.com/nycrides/tripcast/services/users/usecase"
)

// UsersHandler handles account and authentication HTTP requests
type UsersHandler struct {
	userUC users.UserUC
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(userUC users.UserUC) *UsersHandler {
	return &UsersHandler{userUC: userUC}
}

// Register handles POST /api/auth/register
func (h *UsersHandler) Register(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "auth/register")

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	auth, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "account created", auth)
}

// Login handles POST /api/auth/login
func (h *UsersHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "auth/login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	auth, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "login successful", auth)
}

// Me handles GET /api/users/me
func (h *UsersHandler) Me(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "users/me")

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "profile retrieved", user)
}
