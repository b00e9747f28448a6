package middleware

import (
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestID tags every request with a generated ID so log lines belonging to
// one request can be correlated. The ID is echoed in the X-Request-Id header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()

		w.Header().Set("X-Request-Id", id)

		log.WithFields(log.Fields{
			"requestId": id,
			"method":    r.Method,
			"path":      r.URL.Path,
		}).Debug("handling request")

		next.ServeHTTP(w, r)
	})
}
