// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "playlog/internal/delivery/context"
	"playlog/internal/domain/entity"
	domainerrors "playlog/internal/domain/errors"
	"playlog/internal/domain/repository"
	"playlog/internal/domain/service"
	"playlog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and stores a new user document.
// Username uniqueness is left to the store.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*repository.InsertResult, error) {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}
	if err := checkPasswordLength("password", input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	result, err := srv.userRepo.Create(ctx, user)
	if err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID))

	return result, nil
}

// Login verifies the credentials and issues a bearer token for the user.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login for unknown user", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.String("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// ChangePassword replaces the password hash of the authenticated user.
// A token can outlive its account; that case reports ErrUserNotFound.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	if input.NewPassword == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("newPassword is required")
	}
	if err := checkPasswordLength("newPassword", input.NewPassword); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Password change for missing user", slog.String("userID", input.UserID))

		return nil, domainerrors.ErrUserNotFound.WrapMessage("change password failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for password change")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.userRepo.UpdatePasswordHash(ctx, user.ID, hashedPassword)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user deleted during password change")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", user.ID))

	return &usecase.ChangePasswordOutput{Username: user.Username}, nil
}

// DeleteUser removes the user with the given id.
func (srv *accountService) DeleteUser(ctx context.Context, targetID string) error {
	err := srv.userRepo.Delete(ctx, targetID)
	if errors.Is(err, repository.ErrInvalidID) {
		return domainerrors.ErrValidationFailed.WithDetails("id is not a valid user id")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", targetID))

	return nil
}

// ListUsers returns every account without password hashes.
func (srv *accountService) ListUsers(ctx context.Context) ([]entity.UserView, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]entity.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}

	return views, nil
}

func checkPasswordLength(field, password string) error {
	if len(password) > service.MaxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s must be at most %d bytes", field, service.MaxPasswordBytes))
	}

	return nil
}
