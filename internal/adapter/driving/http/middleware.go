package httphandler

import (
	"log/slog"
	"net/http"
	"time"
)

// responseRecorder captures the status code and body size of a response.
// Size matters on the gateway routes, where remote envelopes are relayed
// verbatim and can run large.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rr *responseRecorder) WriteHeader(status int) {
	rr.status = status
	rr.ResponseWriter.WriteHeader(status)
}

func (rr *responseRecorder) Write(p []byte) (int, error) {
	n, err := rr.ResponseWriter.Write(p)
	rr.bytes += n
	return n, err
}

// loggingMiddleware logs one line per request: method, path, status, relayed
// size, and duration. Query strings are omitted because the gateway carries
// credentials in them.
func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rr, r)

		logger.Info("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rr.status,
			"bytes", rr.bytes,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// recoveryMiddleware converts a handler panic into a logged 500 so one bad
// request cannot take the dashboard down.
func recoveryMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("handler panic",
					"panic", v,
					"method", r.Method,
					"path", r.URL.Path,
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
