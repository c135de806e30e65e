// Package middleware provides the HTTP middleware chain used by the
// gateway: request ids, structured request logging, panic recovery,
// per-client rate limiting, CORS and request timeouts.
package middleware

import "net/http"

// Chain applies middlewares to a handler in reverse order, so the first
// middleware in the list is the outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
