// internal/api/handler/blog.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bloglist/internal/api/middleware"
	"bloglist/internal/domain"
	"bloglist/internal/service"
	"bloglist/internal/util"
)

// BlogHandler handles HTTP requests for blog resources.
type BlogHandler struct {
	service service.BlogService
	logger  *slog.Logger
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles the blog listing request.
// GET /api/blogs
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, blogs)
}

// Get handles the single-blog request.
// GET /api/blogs/{blogID}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "blogID"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	blog, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, blog)
}

// Create handles the blog creation request. The principal is resolved by the
// middleware chain before this handler runs.
// POST /api/blogs
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var principal *domain.Principal
	if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
		principal = &p
	}

	var draft domain.BlogDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondWithError(w, h.logger, util.ErrValidation)
		return
	}

	blog, err := h.service.Create(r.Context(), principal, draft)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, blog)
}

// Delete handles the blog deletion request.
// DELETE /api/blogs/{blogID}
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var principal *domain.Principal
	if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
		principal = &p
	}

	id, err := uuid.Parse(chi.URLParam(r, "blogID"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), principal, id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Update handles the blog update request. No principal is required; the
// route deliberately stays outside the authenticated group.
// PUT /api/blogs/{blogID}
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "blogID"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	var patch domain.BlogPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, h.logger, util.ErrValidation)
		return
	}

	blog, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, blog)
}

// Stats handles the aggregate statistics request.
// GET /api/blogs/stats
func (h *BlogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, stats)
}
