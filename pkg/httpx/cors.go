package httpx

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows browser-based relying parties on allowedOrigins to call the
// wrapped endpoint. An empty list or "*" allows any origin. Credentials are
// never allowed.
func CORS(allowedOrigins []string, methods ...string) Middleware {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	if len(methods) == 0 {
		methods = []string{http.MethodGet}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   methods,
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           600,
	})
	return c.Handler
}
