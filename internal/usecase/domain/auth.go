// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// Login verifies credentials and issues a bearer token. Inactive accounts
// are rejected after the password check so the two failures stay
// distinguishable without leaking which emails exist.
func (u *Usecase) Login(ctx context.Context, creds entities.Credentials) (*entities.AuthToken, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		u.log.Infow("login rejected", "email", creds.Email)
		return nil, entities.ErrInvalidCredentials
	}

	if !user.IsActive {
		u.log.Infow("login rejected for inactive user", "user_id", user.ID)
		return nil, entities.ErrUserInactive
	}

	signed, err := u.tokens.Issue(user.Email, user.ID, user.RoleID)
	if err != nil {
		return nil, err
	}

	u.log.Infow("user logged in", "user_id", user.ID)
	return &entities.AuthToken{AccessToken: signed, TokenType: "bearer"}, nil
}
