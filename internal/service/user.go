// internal/service/user.go
package service

import (
	"context"
	"fmt"
	"strings"

	"bloglist/internal/domain"
	"bloglist/internal/repository"
	"bloglist/internal/util"
	"bloglist/pkg/auth"
)

// minimum lengths for registration input
const (
	minUsernameLen = 3
	minPasswordLen = 3
)

// UserService defines the interface for user management logic.
type UserService interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, username, name, password string) (*domain.User, error)
	// List returns all users with their owned blog ids; no credential material.
	List(ctx context.Context) ([]domain.PublicUser, error)
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	hasher     *auth.PasswordHasher
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	hasher *auth.PasswordHasher,
) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		hasher:     hasher,
	}
}

// Register validates the input, hashes the password and stores the user.
// Username uniqueness is enforced against the repository at creation time.
func (s *userService) Register(ctx context.Context, username, name, password string) (*domain.User, error) {
	var problems []string
	if len(strings.TrimSpace(username)) < minUsernameLen {
		problems = append(problems, fmt.Sprintf("username must be at least %d characters", minUsernameLen))
	}
	if len(password) < minPasswordLen {
		problems = append(problems, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", util.ErrValidation, strings.Join(problems, "; "))
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	user := domain.NewUser(username, name, hash)
	if err := s.userRepo.Create(ctx, s.dbExecutor, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns the outbound projection of every user, annotated with the
// derived blog-id back-references.
func (s *userService) List(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.userRepo.List(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		blogIDs, err := s.userRepo.BlogIDs(ctx, s.dbExecutor, u.ID)
		if err != nil {
			return nil, fmt.Errorf("list users: failed to load blog ids for %s: %w", u.ID, err)
		}
		result = append(result, domain.PublicUser{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			BlogIDs:  blogIDs,
		})
	}
	return result, nil
}
