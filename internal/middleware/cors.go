package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// DefaultCORSMaxAge is how long browsers may cache a preflight answer.
const DefaultCORSMaxAge = 10 * time.Minute

const (
	corsAllowMethods = "GET, POST, PUT"
	corsAllowHeaders = "Content-Type, X-Request-ID"
)

// CORSOptions configures CORS.
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         time.Duration
}

// CORS lets the listed origins call the JSON API with the session cookie. The
// page served by the binary is same-origin and needs no entry. Preflights from
// listed origins are answered here with 204; preflights from any other origin
// get 403. Plain requests pass through either way, and the browser enforces
// the missing allow header.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	allow := make(map[string]struct{}, len(opts.AllowedOrigins))
	for _, origin := range opts.AllowedOrigins {
		allow[origin] = struct{}{}
	}
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultCORSMaxAge
	}
	maxAgeSeconds := strconv.Itoa(int(maxAge / time.Second))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Add("Vary", "Origin")
			_, allowed := allow[origin]

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if preflight {
				if !allowed {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Max-Age", maxAgeSeconds)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
			}
			next.ServeHTTP(w, r)
		})
	}
}
