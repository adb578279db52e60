package middleware

import "net/http"

// CORSMiddleware answers for the configured origins; "*" allows any.
type CORSMiddleware struct {
	origins  map[string]struct{}
	allowAll bool
}

func NewCORSMiddleware(origins []string) *CORSMiddleware {
	m := &CORSMiddleware{origins: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		if origin == "*" {
			m.allowAll = true
		}
		m.origins[origin] = struct{}{}
	}
	return m
}

func (m *CORSMiddleware) allowedOrigin(origin string) string {
	if m.allowAll {
		return "*"
	}
	if _, ok := m.origins[origin]; ok {
		return origin
	}
	return ""
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if allowed := m.allowedOrigin(req.Header.Get("Origin")); allowed != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
