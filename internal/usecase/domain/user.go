package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// CreateUser hashes the plaintext password and creates a user account.
func (u *Usecase) CreateUser(ctx context.Context, in entities.UserCreate) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", entities.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return u.repo.CreateUser(ctx, in, string(hash))
}

// UpdateUser applies a partial update to a user. A non-empty newPassword is
// hashed and replaces the stored digest.
func (u *Usecase) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch, newPassword string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	if patch.Empty() {
		return entities.ErrNoFieldsToUpdate
	}
	return u.repo.UpdateUser(ctx, id, patch)
}

// DeleteUser soft-deletes a user.
func (u *Usecase) DeleteUser(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteUser(ctx, id, deletedBy)
}

// ListUsers returns all active users.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListUsers(ctx)
}

// PaginateUsers returns one window of active users.
func (u *Usecase) PaginateUsers(ctx context.Context, filter entities.UserPageFilter) (entities.Page[entities.User], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	filter.Normalize()
	return u.repo.PaginateUsers(ctx, filter)
}
