// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"playlog/internal/domain/entity"
	"playlog/internal/domain/repository"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput carries the authenticated subject and the new password.
type ChangePasswordInput struct {
	UserID      string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the bearer token issued after a successful login.
type LoginOutput struct {
	Token string
}

// ChangePasswordOutput confirms which account was updated.
type ChangePasswordOutput struct {
	Username string
}

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*repository.InsertResult, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*ChangePasswordOutput, error)
	DeleteUser(ctx context.Context, targetID string) error
	ListUsers(ctx context.Context) ([]entity.UserView, error)
}
