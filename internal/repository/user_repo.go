// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"bloglist/internal/domain"
)

// UserRepository defines the interface for user data operations.
// The blog-id list maintained by AppendBlog/RemoveBlog is a derived
// back-reference; blogs.owner_id stays the authoritative relationship.
type UserRepository interface {
	// Create adds a new user using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetByID retrieves a user by their ID.
	GetByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.User, error)
	// GetByUsername retrieves a user by exact username match.
	GetByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
	// List retrieves all users in repository-native order.
	List(ctx context.Context, q DBExecutor) ([]domain.User, error)
	// BlogIDs returns the ids of blogs owned by the user, in append order.
	BlogIDs(ctx context.Context, q DBExecutor, userID uuid.UUID) ([]uuid.UUID, error)
	// AppendBlog records blog ownership in the user's back-reference list.
	// The write is idempotent so it can be safely retried.
	AppendBlog(ctx context.Context, q DBExecutor, userID, blogID uuid.UUID) error
	// RemoveBlog removes a blog id from the user's back-reference list.
	RemoveBlog(ctx context.Context, q DBExecutor, userID, blogID uuid.UUID) error
}
