package rest

import (
	"net/http"

	"github.com/ekshore/loot-list/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Lists   *ListHandler
	Items   *ItemHandler
	Feed    *FeedHandler
	Profile *ProfileHandler
	Metrics http.Handler
}

// Limits are optional per-route rate limiters. A nil limiter is skipped.
type Limits struct {
	Purchase middleware.Middleware
	Auth     middleware.Middleware
}

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(h Handlers, limits Limits) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.Handle("POST /api/auth/register", limited(limits.Auth, h.Auth.Register))
	mux.Handle("POST /api/auth/login", limited(limits.Auth, h.Auth.Login))

	mux.HandleFunc("GET /api/me", h.Profile.Get)
	mux.HandleFunc("PUT /api/me", h.Profile.Update)

	mux.HandleFunc("GET /api/feed", h.Feed.Home)
	mux.HandleFunc("GET /api/lists", h.Feed.Visible)
	mux.HandleFunc("GET /api/lists/mine", h.Feed.Mine)
	mux.HandleFunc("GET /api/lists/shared", h.Feed.Shared)
	mux.HandleFunc("GET /api/lists/public", h.Feed.Public)

	mux.HandleFunc("POST /api/lists", h.Lists.Create)
	mux.HandleFunc("GET /api/lists/{listID}", h.Lists.Get)
	mux.HandleFunc("PUT /api/lists/{listID}", h.Lists.Update)
	mux.HandleFunc("DELETE /api/lists/{listID}", h.Lists.Delete)

	mux.HandleFunc("GET /api/lists/{listID}/items", h.Items.List)
	mux.HandleFunc("POST /api/lists/{listID}/items", h.Items.Add)
	mux.HandleFunc("PUT /api/items/{itemID}", h.Items.Update)
	mux.HandleFunc("DELETE /api/items/{itemID}", h.Items.Delete)
	mux.Handle("POST /api/items/{itemID}/purchase", limited(limits.Purchase, h.Items.Purchase))
	mux.Handle("DELETE /api/items/{itemID}/purchase", limited(limits.Purchase, h.Items.Unpurchase))

	return mux
}

func limited(mw middleware.Middleware, h http.HandlerFunc) http.Handler {
	if mw == nil {
		return h
	}
	return mw(h)
}
