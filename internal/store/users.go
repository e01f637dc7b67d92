package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var dummyPasswordHash = []byte("$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC")

// Users returns every registered account.
func (s *Store) Users(ctx context.Context) []User {
	return loadCollection(ctx, s, usersKey, []User{})
}

// SaveUser upserts a user by id.
func (s *Store) SaveUser(ctx context.Context, user User) error {
	users := s.Users(ctx)
	replaced := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, user)
	}
	return saveCollection(ctx, s, usersKey, users)
}

// UserByEmail looks up an account by email, case-insensitively.
func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	for _, user := range s.Users(ctx) {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

// UserByID looks up an account by id.
func (s *Store) UserByID(ctx context.Context, id string) (User, error) {
	for _, user := range s.Users(ctx) {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

// CreateUser registers a new account, hashing the password with bcrypt.
func (s *Store) CreateUser(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return User{}, fmt.Errorf("name, email and password are required")
	}

	if _, err := s.UserByEmail(ctx, email); err == nil {
		return User{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.SaveUser(ctx, user); err != nil {
		return User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Authenticate validates credentials and returns the matching account.
func (s *Store) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := s.UserByEmail(ctx, email)
	if err != nil {
		// Burn a compare so unknown emails cost the same as bad passwords.
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}
