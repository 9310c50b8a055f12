// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"playlog/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user document matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidID is returned when an identifier is not a valid store id.
	ErrInvalidID = errors.New("invalid id")
)

// InsertResult mirrors the store's acknowledgement for a single insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create inserts a new user and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) (*InsertResult, error)

	// FindByID retrieves a single user by its store ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves the first user with the given username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns every user.
	List(ctx context.Context) ([]*entity.User, error)

	// UpdatePasswordHash replaces the stored hash in place.
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error

	// Delete removes the user with the given ID. Deleting a missing user is not an error.
	Delete(ctx context.Context, id string) error
}
