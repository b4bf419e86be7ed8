package middlewarex

import (
	"log/slog"
	"net/http"

	"dnf_market/pkg/contextx"
	"dnf_market/pkg/logx"
)

// Logger кладёт в контекст запроса логгер с trace id. Должен стоять после TraceID.
func Logger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := log

			if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
				l = l.With(logx.Stringer(logx.FieldTraceID, traceID))
			}

			l = l.With(
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldURL, r.URL.Path),
			)

			next.ServeHTTP(w, r.WithContext(contextx.WithLogger(ctx, l)))
		})
	}
}
