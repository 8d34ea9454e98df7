// internal/domain/blog.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Blog represents a blog entry. OwnerID is the authoritative foreign key to
// the creating User; it is set exactly once at creation and never reassigned.
// The owner's blog-id list is a derived back-reference maintained alongside it.
type Blog struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Author    string    `db:"author" json:"author"` // Free text, optional
	URL       string    `db:"url" json:"url"`
	Likes     int       `db:"likes" json:"likes"`
	OwnerID   uuid.UUID `db:"owner_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewBlog creates a new Blog owned by the given user.
func NewBlog(draft BlogDraft, ownerID uuid.UUID) *Blog {
	now := time.Now().UTC()
	likes := draft.Likes
	if likes <= 0 {
		likes = 0 // likes defaults to 0 when omitted or not positive
	}
	return &Blog{
		ID:        uuid.New(),
		Title:     draft.Title,
		Author:    draft.Author,
		URL:       draft.URL,
		Likes:     likes,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BlogDraft is unsaved input for a new Blog, prior to validation.
type BlogDraft struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// BlogPatch carries replacement values for an existing Blog.
// All four fields are applied as-is, matching the update semantics of the API.
type BlogPatch struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// OwnerSummary is the read-only projection of a blog's owner used in listings.
type OwnerSummary struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// BlogWithOwner annotates a Blog with its owner's summary for read endpoints.
type BlogWithOwner struct {
	Blog
	Owner OwnerSummary `json:"owner"`
}
