package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/ohana-solucoes/padroniza-backend/pkg/ctxutil"
)

// Recovery converts handler panics into 500 responses. The panic value and
// stack are logged with the request ID so the failing upload can be traced.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", v),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
						slog.String("stack", string(debug.Stack())),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
