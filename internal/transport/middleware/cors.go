package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vilyaua/AI-01/internal/config"
)

// CORS returns middleware that answers preflight requests from allowed
// origins and decorates other responses with the matching allow headers.
// An OPTIONS request without Access-Control-Request-Method is not a
// preflight and reaches the router.
func CORS(cfg config.CORSConfig) Middleware {
	allowAll, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			allowed := allowAll || origins[origin]
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(list string) (bool, map[string]bool) {
	set := make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			return true, nil
		}
		if o != "" {
			set[o] = true
		}
	}
	return false, set
}
