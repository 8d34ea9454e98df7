// internal/repository/blog_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"bloglist/internal/domain"
)

// BlogRepository defines the interface for blog data operations.
type BlogRepository interface {
	// Insert adds a new blog using the provided DBExecutor.
	Insert(ctx context.Context, q DBExecutor, blog *domain.Blog) error
	// GetByID retrieves a blog by its ID.
	GetByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Blog, error)
	// GetWithOwner retrieves a blog annotated with its owner's summary.
	GetWithOwner(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.BlogWithOwner, error)
	// Update replaces the mutable fields of an existing blog.
	Update(ctx context.Context, q DBExecutor, blog *domain.Blog) error
	// Delete removes a blog by its ID.
	Delete(ctx context.Context, q DBExecutor, id uuid.UUID) error
	// List retrieves all blogs in repository-native order.
	List(ctx context.Context, q DBExecutor) ([]domain.Blog, error)
	// ListWithOwners retrieves all blogs annotated with owner summaries.
	ListWithOwners(ctx context.Context, q DBExecutor) ([]domain.BlogWithOwner, error)
}
