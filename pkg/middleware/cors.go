package middleware

import (
	"net/http"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Cors allows the configured front-end origin plus local dev servers.
func Cors(frontendURL string) func(http.Handler) http.Handler {
	allowed := make([]string, 0, len(defaultOrigins)+1)
	allowed = append(allowed, defaultOrigins...)
	if frontendURL != "" {
		allowed = append(allowed, frontendURL)
	}

	isAllowed := func(origin string) bool {
		for _, o := range allowed {
			if origin == o {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if isAllowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
