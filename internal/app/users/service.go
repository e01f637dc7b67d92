package users

import (
	"context"
	"fmt"

	"ratebeat/internal/store"
)

// Store defines the persistence hooks for account workflows.
type Store interface {
	CreateUser(ctx context.Context, name, email, password string) (store.User, error)
	Authenticate(ctx context.Context, email, password string) (store.User, error)
	UserByID(ctx context.Context, id string) (store.User, error)
}

// TokenIssuer mints session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// Service coordinates signup, login and profile reads.
type Service interface {
	Signup(ctx context.Context, name, email, password string) (store.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (store.User, error)
}

type service struct {
	store  Store
	tokens TokenIssuer
}

// New constructs a users Service backed by the given Store.
func New(store Store, tokens TokenIssuer) Service {
	return &service{store: store, tokens: tokens}
}

func (s *service) Signup(ctx context.Context, name, email, password string) (store.User, error) {
	if err := ctx.Err(); err != nil {
		return store.User{}, err
	}
	return s.store.CreateUser(ctx, name, email, password)
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	user, err := s.store.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *service) Profile(ctx context.Context, userID string) (store.User, error) {
	if err := ctx.Err(); err != nil {
		return store.User{}, err
	}
	return s.store.UserByID(ctx, userID)
}
