package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation ID. Clients of the
// portal API may supply their own; otherwise one is generated.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace ID to every request: the incoming
// X-Trace-ID header is reused when present, a fresh UUID is generated
// when it is not. The ID is echoed in the response header and stamped
// onto a child logger stored in the request context, so every log line
// produced while serving the request (handlers, services, repositories)
// carries the same trace_id field.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var traceID string
		if traceIDFromRequestHeader := r.Header.Get(traceIDHeader); traceIDFromRequestHeader != "" {
			traceID = traceIDFromRequestHeader
		} else {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
