package httpapi

import (
	"net/http"

	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerMatchRoutes(mux, handler)

	return CORS(corsAllowedOrigins, RequestID(RequestTracing(RequestLogging(logger, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		var catcher panics.Catcher
		catcher.Try(func() {
			next.ServeHTTP(w, r.WithContext(ctx))
		})
		if rec := catcher.Recovered(); rec != nil {
			logger.ErrorContext(ctx, "panic recovered",
				"panic", rec.Value,
				"stack", string(rec.Stack),
				"request_id", requestIDFromContext(ctx),
			)
			writeInternalError(ctx, w)
		}
	})
}
