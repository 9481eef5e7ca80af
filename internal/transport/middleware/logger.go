package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/restoration-backend/pkg/ctxutil"
)

// Logger writes one "http.request" record per request. Server errors log at
// ERROR, rejected requests at WARN, the rest at INFO. Operator attributes
// appear when Auth ran earlier in the chain.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			tw := wrapWriter(w)

			next.ServeHTTP(tw, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", tw.status),
				slog.Int("bytes", tw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if operatorID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs,
					slog.String("user_id", operatorID.String()),
					slog.String("role", ctxutil.UserRoleFromCtx(ctx)),
				)
			}
			logger.LogAttrs(ctx, levelFor(tw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusUnauthorized, status == http.StatusForbidden, status == http.StatusTooManyRequests:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
