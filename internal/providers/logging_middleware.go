package providers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

func LoggingMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.Debugf(TypeHTTP, "%s %s %d %s req=%s ip=%s",
			r.Method, r.URL.Path, sw.status, time.Since(start), middleware.GetReqID(r.Context()), r.RemoteAddr)
	})
}
