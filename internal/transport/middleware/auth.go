package middleware

import (
	"net/http"
	"strings"

	"github.com/ekshore/loot-list/internal/domain"
	"github.com/ekshore/loot-list/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (domain.Principal, error)
}

// Auth resolves the bearer token into the request principal.
// Requests without a token proceed as anonymous; an invalid token is a 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			p, err := validator.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, domain.KindUnauthenticated, "invalid or expired token")
				return
			}
			ctx := ctxutil.WithPrincipal(r.Context(), p)
			recordContext(w, ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
