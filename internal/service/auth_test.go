// internal/service/auth_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bloglist/internal/domain"
	"bloglist/internal/util"
	"bloglist/pkg/auth"
)

func newAuthServiceWithMocks(ttl time.Duration) (AuthService, *MockUserRepository, *auth.PasswordHasher) {
	userRepo := new(MockUserRepository)
	hasher := auth.NewPasswordHasher(4) // minimum cost keeps tests fast
	tokens := auth.NewTokenManager([]byte("test-secret"), ttl)
	return NewAuthService(new(MockDBExecutor), userRepo, hasher, tokens), userRepo, hasher
}

func TestLogin(t *testing.T) {
	t.Run("SuccessfulLogin", func(t *testing.T) {
		ctx := context.Background()
		svc, userRepo, hasher := newAuthServiceWithMocks(time.Hour)

		hash, err := hasher.Hash("salainen")
		require.NoError(t, err)
		stored := domain.NewUser("mluukkai", "Matti Luukainen", hash)
		userRepo.On("GetByUsername", ctx, mock.Anything, "mluukkai").Return(stored, nil).Once()

		token, user, err := svc.Login(ctx, "mluukkai", "salainen")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "mluukkai", user.Username)

		// The issued token resolves back to the same identity.
		principal, err := svc.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, principal.UserID)
		assert.Equal(t, "mluukkai", principal.Username)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctx := context.Background()
		svc, userRepo, hasher := newAuthServiceWithMocks(time.Hour)

		hash, err := hasher.Hash("salainen")
		require.NoError(t, err)
		stored := domain.NewUser("mluukkai", "Matti Luukainen", hash)
		userRepo.On("GetByUsername", ctx, mock.Anything, "mluukkai").Return(stored, nil).Once()

		token, user, err := svc.Login(ctx, "mluukkai", "wrong")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		ctx := context.Background()
		svc, userRepo, _ := newAuthServiceWithMocks(time.Hour)

		userRepo.On("GetByUsername", ctx, mock.Anything, "nobody").Return(nil, util.ErrNotFound).Once()

		token, user, err := svc.Login(ctx, "nobody", "whatever")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("WrongPasswordAndUnknownUserAreIndistinguishable", func(t *testing.T) {
		ctx := context.Background()
		svc, userRepo, hasher := newAuthServiceWithMocks(time.Hour)

		hash, err := hasher.Hash("salainen")
		require.NoError(t, err)
		stored := domain.NewUser("mluukkai", "Matti Luukainen", hash)
		userRepo.On("GetByUsername", ctx, mock.Anything, "mluukkai").Return(stored, nil).Once()
		userRepo.On("GetByUsername", ctx, mock.Anything, "ghost").Return(nil, util.ErrNotFound).Once()

		_, _, errWrongPassword := svc.Login(ctx, "mluukkai", "wrong")
		_, _, errUnknownUser := svc.Login(ctx, "ghost", "wrong")

		assert.Equal(t, errWrongPassword, errUnknownUser)
	})
}

func TestResolve(t *testing.T) {
	t.Run("MalformedToken", func(t *testing.T) {
		ctx := context.Background()
		svc, _, _ := newAuthServiceWithMocks(time.Hour)

		_, err := svc.Resolve(ctx, "not-a-token")

		assert.ErrorIs(t, err, util.ErrInvalidToken)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		ctx := context.Background()
		svc, userRepo, hasher := newAuthServiceWithMocks(-time.Minute)

		hash, err := hasher.Hash("salainen")
		require.NoError(t, err)
		stored := domain.NewUser("mluukkai", "Matti Luukainen", hash)
		userRepo.On("GetByUsername", ctx, mock.Anything, "mluukkai").Return(stored, nil).Once()

		token, _, err := svc.Login(ctx, "mluukkai", "salainen")
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, token)
		assert.ErrorIs(t, err, util.ErrInvalidToken)
	})

	t.Run("TokenSignedWithDifferentKey", func(t *testing.T) {
		ctx := context.Background()
		svc, _, _ := newAuthServiceWithMocks(time.Hour)

		foreign := auth.NewTokenManager([]byte("other-secret"), time.Hour)
		token, err := foreign.Sign(auth.Claims{UserID: domain.NewUser("x", "", "h").ID, Username: "x"})
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, token)
		assert.ErrorIs(t, err, util.ErrInvalidToken)
	})
}
