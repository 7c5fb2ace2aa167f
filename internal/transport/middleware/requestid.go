package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/adelicia-js/milestone-monitor-sub001/pkg/logger"
)

// RequestID honors an inbound X-Trace-ID, minting one when absent, and
// threads it through the context logger and the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "trace_id", traceID)
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
