package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Timeout middleware cancels the request context after the given duration.
// If the handler has not finished by then, a 408 is written.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})

			go func() {
				next.ServeHTTP(w, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					WriteError(w, http.StatusRequestTimeout, ErrorCodeTimeout, "request timed out")
				}
			}
		})
	}
}
