package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"rodizio-reservas/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, "Location", RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

// the form reads the new draft's Location and logs carry the request id
func withHeaders(configured []string, required ...string) []string {
	out := append([]string(nil), configured...)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return strings.EqualFold(v, h) }) {
			out = append(out, h)
		}
	}
	return out
}
