package middleware

import (
	"crypto/subtle"
	"net/http"

	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

// OwnerKey middleware guards owner dashboard endpoints with a shared API key.
// Full account management lives in an external identity layer.
func OwnerKey(apiKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Owner-Key")
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing owner key")
				return
			}

			if apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				logger.Warn("Invalid owner key",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseUnauthorized(w, "Invalid owner key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
