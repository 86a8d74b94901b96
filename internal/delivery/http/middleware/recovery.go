package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	h "weddinginvitation/internal/delivery/http/helpers"
)

// Recovery converts a panic in next into a 500 response and logs it with the stack trace.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func Recovery(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			h.WriteInternalError(w)
		}()
		next.ServeHTTP(w, r)
	})
}
