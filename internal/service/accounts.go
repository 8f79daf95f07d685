package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mwhite7112/woodpantry-drinks/internal/db"
)

// CreateAccount stores a new user with a bcrypt hash of password. Usernames
// are unique; a taken name yields ErrConflict.
func (s *Service) CreateAccount(ctx context.Context, username, password string) (db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return db.User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return db.User{}, err
	}

	user, err := s.q.CreateUser(ctx, db.CreateUserParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// ON CONFLICT DO NOTHING returned no row.
			return db.User{}, fmt.Errorf("%w: user %s", ErrConflict, username)
		}
		return db.User{}, err
	}

	slog.Info("account created", "username", user.Username, "id", user.ID)
	return user, nil
}

// Login checks password against the stored hash for username.
func (s *Service) Login(ctx context.Context, username, password string) (db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return db.User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return db.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return db.User{}, fmt.Errorf("%w: user %s", ErrInvalidCredentials, username)
		}
		return db.User{}, fmt.Errorf("compare password: %w", err)
	}
	return user, nil
}

// UpdatePassword replaces the stored hash for username.
func (s *Service) UpdatePassword(ctx context.Context, username, newPassword string) (db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || newPassword == "" {
		return db.User{}, fmt.Errorf("%w: username and new password are required", ErrValidation)
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return db.User{}, err
	}

	user, err := s.q.UpdateUserPassword(ctx, db.UpdateUserPasswordParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.User{}, fmt.Errorf("%w: user %s", ErrNotFound, username)
		}
		return db.User{}, err
	}

	slog.Info("password updated", "username", user.Username)
	return user, nil
}

func (s *Service) getUser(ctx context.Context, username string) (db.User, error) {
	user, err := s.q.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.User{}, fmt.Errorf("%w: user %s", ErrNotFound, username)
		}
		return db.User{}, err
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password is longer than 72 bytes", ErrValidation)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
