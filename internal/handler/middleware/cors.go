package middleware

import (
	"log/slog"
	"slices"

	"clinic-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browsers hide response headers that are not exposed; clients read the
// created visit from Location.
var alwaysExposed = []string{"Location"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.AllowOrigins
	corsCfg.AllowMethods = cfg.AllowMethods
	corsCfg.AllowHeaders = cfg.AllowHeaders
	corsCfg.AllowCredentials = cfg.AllowCredentials
	corsCfg.MaxAge = cfg.MaxAge
	corsCfg.ExposeHeaders = slices.Clone(cfg.ExposeHeaders)
	for _, h := range alwaysExposed {
		if !slices.Contains(corsCfg.ExposeHeaders, h) {
			corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, h)
		}
	}

	slog.Info("cors configured",
		"origins", cfg.AllowOrigins,
		"credentials", cfg.AllowCredentials,
		"expose", corsCfg.ExposeHeaders,
	)
	return cors.New(corsCfg)
}
