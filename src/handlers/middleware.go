package handlers

import (
	"net/http"
	"strings"

	"github.com/username/brokercomm/src/logger"
	"github.com/username/brokercomm/src/security"
	"github.com/username/brokercomm/src/utils"
)

// AuthMiddleware requires a valid bearer token on protected endpoints.
func AuthMiddleware(authService *security.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		if _, err := authService.ValidateToken(token); err != nil {
			logger.L.Warn("Rejected invalid token", "path", r.URL.Path, "error", err)
			utils.SendJSONError(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
