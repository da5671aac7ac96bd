package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// requestLogger logs one line per handled request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			logger.Debug("request handled",
				zap.String("op", "server.request"),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("remote_ip", req.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
