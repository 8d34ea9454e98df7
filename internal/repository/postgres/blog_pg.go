// internal/repository/postgres/blog_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bloglist/internal/domain"
	"bloglist/internal/repository"
	"bloglist/internal/util"
)

// BlogRepository implements repository.BlogRepository for PostgreSQL.
type BlogRepository struct {
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sqlx.DB) repository.BlogRepository {
	return &BlogRepository{}
}

// blogOwnerRow is the flat scan target for blog+owner join queries.
type blogOwnerRow struct {
	ID            uuid.UUID `db:"id"`
	Title         string    `db:"title"`
	Author        string    `db:"author"`
	URL           string    `db:"url"`
	Likes         int       `db:"likes"`
	OwnerID       uuid.UUID `db:"owner_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	OwnerUsername string    `db:"owner_username"`
	OwnerName     string    `db:"owner_name"`
}

func (row blogOwnerRow) toDomain() domain.BlogWithOwner {
	return domain.BlogWithOwner{
		Blog: domain.Blog{
			ID:        row.ID,
			Title:     row.Title,
			Author:    row.Author,
			URL:       row.URL,
			Likes:     row.Likes,
			OwnerID:   row.OwnerID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		Owner: domain.OwnerSummary{
			Username: row.OwnerUsername,
			Name:     row.OwnerName,
		},
	}
}

// Insert adds a new blog using the provided DBExecutor.
func (r *BlogRepository) Insert(ctx context.Context, q repository.DBExecutor, blog *domain.Blog) error {
	query := `INSERT INTO blogs (id, title, author, url, likes, owner_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.ExecContext(ctx, query,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes,
		blog.OwnerID, blog.CreatedAt, blog.UpdatedAt)
	if err != nil {
		return storageErr("insert blog", err)
	}
	return nil
}

// GetByID retrieves a blog by its ID using the provided DBExecutor.
func (r *BlogRepository) GetByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Blog, error) {
	var blog domain.Blog
	query := `SELECT id, title, author, url, likes, owner_id, created_at, updated_at
              FROM blogs WHERE id = $1`
	err := q.GetContext(ctx, &blog, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, storageErr(fmt.Sprintf("get blog by id %s", id), err)
	}
	return &blog, nil
}

// GetWithOwner retrieves a blog annotated with its owner's summary.
func (r *BlogRepository) GetWithOwner(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.BlogWithOwner, error) {
	var row blogOwnerRow
	query := `SELECT b.id, b.title, b.author, b.url, b.likes, b.owner_id,
                     b.created_at, b.updated_at,
                     u.username AS owner_username, u.name AS owner_name
              FROM blogs b
              JOIN users u ON u.id = b.owner_id
              WHERE b.id = $1`
	err := q.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, storageErr(fmt.Sprintf("get blog with owner by id %s", id), err)
	}
	res := row.toDomain()
	return &res, nil
}

// Update replaces title, author, url and likes of an existing blog.
func (r *BlogRepository) Update(ctx context.Context, q repository.DBExecutor, blog *domain.Blog) error {
	query := `UPDATE blogs
              SET title = $1, author = $2, url = $3, likes = $4, updated_at = $5
              WHERE id = $6`
	res, err := q.ExecContext(ctx, query,
		blog.Title, blog.Author, blog.URL, blog.Likes, blog.UpdatedAt, blog.ID)
	if err != nil {
		return storageErr(fmt.Sprintf("update blog %s", blog.ID), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr(fmt.Sprintf("update blog %s", blog.ID), err)
	}
	if affected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// Delete removes a blog by its ID.
func (r *BlogRepository) Delete(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	res, err := q.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return storageErr(fmt.Sprintf("delete blog %s", id), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr(fmt.Sprintf("delete blog %s", id), err)
	}
	if affected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// List retrieves all blogs in insertion order.
func (r *BlogRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Blog, error) {
	var blogs []domain.Blog
	query := `SELECT id, title, author, url, likes, owner_id, created_at, updated_at
              FROM blogs ORDER BY created_at, id`
	if err := q.SelectContext(ctx, &blogs, query); err != nil {
		return nil, storageErr("list blogs", err)
	}
	return blogs, nil
}

// ListWithOwners retrieves all blogs annotated with owner summaries.
func (r *BlogRepository) ListWithOwners(ctx context.Context, q repository.DBExecutor) ([]domain.BlogWithOwner, error) {
	var rows []blogOwnerRow
	query := `SELECT b.id, b.title, b.author, b.url, b.likes, b.owner_id,
                     b.created_at, b.updated_at,
                     u.username AS owner_username, u.name AS owner_name
              FROM blogs b
              JOIN users u ON u.id = b.owner_id
              ORDER BY b.created_at, b.id`
	if err := q.SelectContext(ctx, &rows, query); err != nil {
		return nil, storageErr("list blogs with owners", err)
	}
	blogs := make([]domain.BlogWithOwner, 0, len(rows))
	for _, row := range rows {
		blogs = append(blogs, row.toDomain())
	}
	return blogs, nil
}
