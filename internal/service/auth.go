// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"

	"bloglist/internal/domain"
	"bloglist/internal/repository"
	"bloglist/internal/util"
	"bloglist/pkg/auth"
)

// AuthService defines the interface for authentication logic.
type AuthService interface {
	// Login authenticates a user and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Resolve verifies a token and returns the principal it encodes.
	// The user record is not re-fetched; the principal is trusted as of issuance.
	Resolve(ctx context.Context, token string) (domain.Principal, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	hasher     *auth.PasswordHasher
	tokens     *auth.TokenManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
) AuthService {
	return &authService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Login looks up the user by exact username and verifies the password.
// Unknown username and wrong password return the identical error so a caller
// cannot probe which accounts exist.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: failed to look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(auth.Claims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return "", nil, fmt.Errorf("login: failed to sign token: %w", err)
	}
	return token, user, nil
}

// Resolve delegates token validation to the token codec.
func (s *authService) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Principal{}, util.ErrInvalidToken
	}
	return domain.Principal{UserID: claims.UserID, Username: claims.Username}, nil
}
