package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"playlog/internal/delivery/api/middleware"
	"playlog/internal/delivery/api/response"
	domainerrors "playlog/internal/domain/errors"
	"playlog/internal/domain/repository"
	"playlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration, login and the bearer-protected account routes.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// CredentialsRequest is the body of /register and /login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

// ChangePasswordRequest is the body of /changepassword.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,max=72"`
}

// RegisterResponse wraps the store insertion result.
type RegisterResponse struct {
	Results *repository.InsertResult `json:"results"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// Register handles account creation
func (h *AccountHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, RegisterResponse{Results: result})
}

// Login handles credential verification and token issuance
func (h *AccountHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	// Missing fields are reported as invalid credentials, same as a wrong password.
	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, LoginResponse{Token: output.Token})
}

// ListUsers returns every account without password hashes
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.accountUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, users)
}

// ChangePassword replaces the password of the authenticated user
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:      userID,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Text(c, http.StatusOK, fmt.Sprintf("Password changed for user '%s'.", output.Username))
}

// DeleteUser removes the account named in the path
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	if err := h.accountUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, MessageResponse{Message: "OK"})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
