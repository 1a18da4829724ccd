package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/shopctl/pkg/auth"
	"github.com/shashiranjanraj/shopctl/pkg/response"
)

// Auth rejects requests that do not carry a valid bearer token.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.Replace(r.Header.Get("Authorization"), "Bearer ", "", 1)

		if token == "" {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		if _, err := auth.ValidateToken(token); err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
