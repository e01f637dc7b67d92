package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratebeat/internal/store"
)

type fakeStore struct {
	user    store.User
	authErr error
}

func (f *fakeStore) CreateUser(ctx context.Context, name, email, password string) (store.User, error) {
	return store.User{ID: "u1", Name: name, Email: email}, nil
}

func (f *fakeStore) Authenticate(ctx context.Context, email, password string) (store.User, error) {
	if f.authErr != nil {
		return store.User{}, f.authErr
	}
	return f.user, nil
}

func (f *fakeStore) UserByID(ctx context.Context, id string) (store.User, error) {
	if f.user.ID != id {
		return store.User{}, store.ErrUserNotFound
	}
	return f.user, nil
}

type fakeIssuer struct {
	token string
	err   error

	issuedFor string
}

func (f *fakeIssuer) Issue(userID string) (string, error) {
	f.issuedFor = userID
	return f.token, f.err
}

func TestLoginIssuesToken(t *testing.T) {
	fs := &fakeStore{user: store.User{ID: "u1", Email: "ana@example.com"}}
	issuer := &fakeIssuer{token: "tok"}
	svc := New(fs, issuer)

	token, err := svc.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "u1", issuer.issuedFor)
}

func TestLoginBadCredentials(t *testing.T) {
	fs := &fakeStore{authErr: store.ErrInvalidCredentials}
	svc := New(fs, &fakeIssuer{})

	_, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestLoginTokenFailure(t *testing.T) {
	fs := &fakeStore{user: store.User{ID: "u1"}}
	svc := New(fs, &fakeIssuer{err: errors.New("no key")})

	_, err := svc.Login(context.Background(), "ana@example.com", "pw")
	require.Error(t, err)
}

func TestProfile(t *testing.T) {
	fs := &fakeStore{user: store.User{ID: "u1", Name: "Ana"}}
	svc := New(fs, &fakeIssuer{})

	user, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	_, err = svc.Profile(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
