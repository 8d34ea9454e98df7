// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"bloglist/internal/api/types"
	"bloglist/internal/domain"
	"bloglist/internal/service"
)

type ctxKey int

const (
	tokenKey ctxKey = iota
	principalKey
)

// bearerPrefix is the case-sensitive Authorization scheme this API accepts,
// matching the wire convention "bearer <token>".
const bearerPrefix = "bearer "

// WithToken stores a candidate token in the request context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext fetches the candidate token from the request context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// WithPrincipal stores the resolved principal in the request context.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext fetches the resolved principal from the request context.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

// TokenExtractor reads the Authorization header and, when it carries a
// "bearer " credential with a non-empty remainder, stores the remainder in
// the request context. A missing or malformed header is not an error here;
// enforcement belongs to the routes that opt into RequirePrincipal.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.HasPrefix(header, bearerPrefix) {
			if token := header[len(bearerPrefix):]; token != "" {
				r = r.WithContext(WithToken(r.Context(), token))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePrincipal resolves the candidate token into a principal and stores
// it in the request context. Requests without a resolvable token are
// rejected here, before any handler or repository code runs.
func RequirePrincipal(authService service.AuthService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFromContext(r.Context())
			if !ok {
				respondUnauthorized(w, "token missing")
				return
			}

			principal, err := authService.Resolve(r.Context(), token)
			if err != nil {
				logger.Info("token resolution failed", "error", err)
				respondUnauthorized(w, "token invalid")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: message})
}
