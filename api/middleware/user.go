package middleware

import (
	"net/http"
	"strings"

	"github.com/autonexhq/autonex-backend/pkg/logger"
)

const (
	userIDHeader  = "X-User-Id"
	defaultUserID = "u1"
)

// MockUser resolves the acting user from the X-User-Id header, falling back
// to the demo account. There is no authentication layer; the header stands
// in for a session until one exists.
func MockUser(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(userIDHeader))
			if userID == "" {
				userID = defaultUserID
			}

			ctx := WithUserID(r.Context(), userID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
