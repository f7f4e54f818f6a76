package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds mws into one Middleware, first argument outermost: the server
// passes RequestID first so every later layer can log the ID, and Metrics
// last so it sees the route pattern the mux sets. Nil entries are skipped,
// letting callers leave out optional layers inline.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		h := final
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			h = mws[i](h)
		}
		return h
	}
}
