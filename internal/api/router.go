// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bloglist/internal/api/handler"
	"bloglist/internal/api/middleware"
	"bloglist/internal/service"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	blogHandler *handler.BlogHandler,
	userHandler *handler.UserHandler,
	loginHandler *handler.LoginHandler,
	authService service.AuthService,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(handler.DefaultTimeout))
	r.Use(middleware.TokenExtractor) // stage 1: candidate token into context

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Post("/api/login", loginHandler.Login)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Get("/", userHandler.List)
	})

	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/", blogHandler.List)
		r.Get("/stats", blogHandler.Stats)
		r.Get("/{blogID}", blogHandler.Get)
		// Update stays unauthenticated on purpose; only create and delete
		// opt into principal resolution.
		r.Put("/{blogID}", blogHandler.Update)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePrincipal(authService, logger)) // stage 2
			r.Post("/", blogHandler.Create)
			r.Delete("/{blogID}", blogHandler.Delete)
		})
	})

	return r
}
