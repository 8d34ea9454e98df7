// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"bloglist/internal/domain"
	"bloglist/internal/repository"
	"bloglist/internal/util"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint failures.
const uniqueViolation = "23505"

// storageErr wraps an unexpected driver failure so callers can match
// util.ErrStorage while the original cause stays in the message.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, util.ErrStorage, err)
}

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// Methods receive a DBExecutor directly, so no connection is stored here.
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// Create inserts a new user using the provided DBExecutor.
func (r *UserRepository) Create(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (id, username, name, password_hash, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query,
		user.ID, user.Username, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return util.ErrDuplicateUsername
		}
		return storageErr("create user", err)
	}
	return nil
}

// GetByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, name, password_hash, created_at, updated_at
              FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, storageErr(fmt.Sprintf("get user by id %s", id), err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by exact username match.
func (r *UserRepository) GetByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, name, password_hash, created_at, updated_at
              FROM users WHERE username = $1`
	err := q.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, storageErr(fmt.Sprintf("get user by username %q", username), err)
	}
	return &user, nil
}

// List retrieves all users in insertion order.
func (r *UserRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	var users []domain.User
	query := `SELECT id, username, name, password_hash, created_at, updated_at
              FROM users ORDER BY created_at, id`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		return nil, storageErr("list users", err)
	}
	return users, nil
}

// BlogIDs returns the ids of blogs owned by the user, in append order.
func (r *UserRepository) BlogIDs(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT blog_id FROM user_blogs WHERE user_id = $1 ORDER BY position`
	if err := q.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, storageErr(fmt.Sprintf("list blog ids for user %s", userID), err)
	}
	return ids, nil
}

// AppendBlog records blog ownership in the user's back-reference list.
// ON CONFLICT DO NOTHING keeps the write idempotent under retries.
func (r *UserRepository) AppendBlog(ctx context.Context, q repository.DBExecutor, userID, blogID uuid.UUID) error {
	query := `INSERT INTO user_blogs (user_id, blog_id)
              VALUES ($1, $2)
              ON CONFLICT (user_id, blog_id) DO NOTHING`
	if _, err := q.ExecContext(ctx, query, userID, blogID); err != nil {
		return storageErr(fmt.Sprintf("append blog %s to user %s", blogID, userID), err)
	}
	return nil
}

// RemoveBlog removes a blog id from the user's back-reference list.
func (r *UserRepository) RemoveBlog(ctx context.Context, q repository.DBExecutor, userID, blogID uuid.UUID) error {
	query := `DELETE FROM user_blogs WHERE user_id = $1 AND blog_id = $2`
	if _, err := q.ExecContext(ctx, query, userID, blogID); err != nil {
		return storageErr(fmt.Sprintf("remove blog %s from user %s", blogID, userID), err)
	}
	return nil
}
