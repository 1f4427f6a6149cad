package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/jsamuelsen/chembond-tutor/internal/platform/config"
)

// CORS returns middleware that applies the cross-origin policy in cfg.
// Preflight requests are answered directly and never reach route handlers.
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	policy := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return func(c *gin.Context) {
		passed := false

		policy.Handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
		})).ServeHTTP(c.Writer, c.Request)

		if !passed {
			c.Abort()
			return
		}

		c.Next()
	}
}
