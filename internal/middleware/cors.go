// internal/middleware/cors.go
//
// Cross-origin allow-list middleware.
//
// The storefront and the two admin dashboards are served from their own
// origins and call this API directly from the browser, so every deployment
// configures an explicit origin list (http.cors_origins).  Requests from
// an unlisted origin get no CORS headers at all; the browser enforces the
// rest.  Credentials are allowed because the dashboards send cookies.

package middleware

import "net/http"

// CORS returns a middleware that mirrors the request Origin back when it
// is on the allow-list, and answers preflight OPTIONS directly.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if _, ok := allowed[origin]; ok {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Vary", "Origin")
				if r.Method == http.MethodOptions {
					h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Content-Type")
					h.Set("Access-Control-Max-Age", "600")
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
