// internal/service/blog.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bloglist/internal/domain"
	"bloglist/internal/repository"
	"bloglist/internal/util"
	"bloglist/pkg/db"
)

// BlogService defines the interface for blog-related business logic.
type BlogService interface {
	// List returns all blogs annotated with their owner summaries.
	List(ctx context.Context) ([]domain.BlogWithOwner, error)
	// Get returns a single blog annotated with its owner summary.
	Get(ctx context.Context, id uuid.UUID) (*domain.BlogWithOwner, error)
	// Create stores a new blog owned by the principal and records the
	// ownership back-reference; the two writes commit as one unit.
	Create(ctx context.Context, principal *domain.Principal, draft domain.BlogDraft) (*domain.Blog, error)
	// Delete removes a blog owned by the principal along with its back-reference.
	Delete(ctx context.Context, principal *domain.Principal, id uuid.UUID) error
	// Update replaces title, author, url and likes of an existing blog.
	// The operation intentionally requires no principal; see the API docs.
	Update(ctx context.Context, id uuid.UUID, patch domain.BlogPatch) (*domain.Blog, error)
	// Stats computes the aggregate statistics over all stored blogs.
	Stats(ctx context.Context) (*BlogStats, error)
}

// blogService implements the BlogService interface.
type blogService struct {
	dbBeginner db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor repository.DBExecutor // For non-transactional reads
	userRepo   repository.UserRepository
	blogRepo   repository.BlogRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewBlogService creates a new instance of BlogService.
func NewBlogService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	blogRepo repository.BlogRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) BlogService {
	return &blogService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		blogRepo:   blogRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// List returns all blogs with owner summaries in repository-native order.
// No sort is imposed here; callers sort for display if needed.
func (s *blogService) List(ctx context.Context) ([]domain.BlogWithOwner, error) {
	blogs, err := s.blogRepo.ListWithOwners(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

// Get returns a single blog with its owner summary.
func (s *blogService) Get(ctx context.Context, id uuid.UUID) (*domain.BlogWithOwner, error) {
	blog, err := s.blogRepo.GetWithOwner(ctx, s.dbExecutor, id)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get blog %s: %w", id, err)
	}
	return blog, nil
}

// Create validates the draft, then performs the blog insert and the owner's
// back-reference append inside a single transaction. Authorization and
// validation failures are reported before any write is attempted.
func (s *blogService) Create(ctx context.Context, principal *domain.Principal, draft domain.BlogDraft) (*domain.Blog, error) {
	if principal == nil {
		return nil, util.ErrUnauthorized
	}

	var missing []string
	if strings.TrimSpace(draft.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(draft.URL) == "" {
		missing = append(missing, "url")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required field(s): %s",
			util.ErrValidation, strings.Join(missing, ", "))
	}

	blog := domain.NewBlog(draft, principal.UserID)

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create blog: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create blog: transaction controller does not implement DBExecutor")
	}

	if err := s.blogRepo.Insert(ctx, txExecutor, blog); err != nil {
		return nil, fmt.Errorf("create blog: failed to insert blog: %w", err)
	}

	// The back-reference and the blog row must become visible together.
	// A failure past the insert must not be reported as success.
	if err := s.userRepo.AppendBlog(ctx, txExecutor, principal.UserID, blog.ID); err != nil {
		return nil, fmt.Errorf("%w: failed to record ownership of blog %s: %v",
			util.ErrPartialWrite, blog.ID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("%w: failed to commit blog %s: %v",
			util.ErrPartialWrite, blog.ID, err)
	}

	return blog, nil
}

// Delete removes a blog and its ownership back-reference as one unit.
// Ownership is compared by identifier value before any mutation happens.
func (s *blogService) Delete(ctx context.Context, principal *domain.Principal, id uuid.UUID) error {
	if principal == nil {
		return util.ErrUnauthorized
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete blog: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("delete blog: transaction controller does not implement DBExecutor")
	}

	blog, err := s.blogRepo.GetByID(ctx, txExecutor, id)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete blog: failed to get blog %s: %w", id, err)
	}

	if blog.OwnerID != principal.UserID {
		return util.ErrForbidden
	}

	if err := s.blogRepo.Delete(ctx, txExecutor, id); err != nil {
		return fmt.Errorf("delete blog: failed to delete blog %s: %w", id, err)
	}
	if err := s.userRepo.RemoveBlog(ctx, txExecutor, blog.OwnerID, id); err != nil {
		return fmt.Errorf("%w: failed to remove ownership of blog %s: %v",
			util.ErrPartialWrite, id, err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("%w: failed to commit deletion of blog %s: %v",
			util.ErrPartialWrite, id, err)
	}
	return nil
}

// Update replaces the mutable fields of an existing blog. Ownership is not
// reassigned and no principal is required, mirroring the API contract.
func (s *blogService) Update(ctx context.Context, id uuid.UUID, patch domain.BlogPatch) (*domain.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, s.dbExecutor, id)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("update blog: failed to get blog %s: %w", id, err)
	}

	blog.Title = patch.Title
	blog.Author = patch.Author
	blog.URL = patch.URL
	blog.Likes = patch.Likes
	blog.UpdatedAt = time.Now().UTC()

	if err := s.blogRepo.Update(ctx, s.dbExecutor, blog); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("update blog: failed to update blog %s: %w", id, err)
	}
	return blog, nil
}

// Stats folds the aggregate functions over the current blog table.
func (s *blogService) Stats(ctx context.Context) (*BlogStats, error) {
	blogs, err := s.blogRepo.List(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("blog stats: %w", err)
	}
	return &BlogStats{
		TotalLikes:   TotalLikes(blogs),
		FavoriteBlog: FavoriteBlog(blogs),
		MostBlogs:    MostBlogs(blogs),
		MostLikes:    MostLikes(blogs),
	}, nil
}
