package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	portssvc "github.com/sporax/currency_converter_app/internal/core/ports/services"
	"github.com/sporax/currency_converter_app/internal/middleware"
	"github.com/sporax/currency_converter_app/pkg/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1", cors.Default(), rateLimiter(cfg))

	registerCurrencyRoutes(v1, services.Registry)
	registerRateRoutes(v1, services.Registry)
	registerConvertRoutes(v1, services.Converter)
}

// rateLimiter builds an in-memory IP rate limiting middleware from the
// configured limit (limiter formatted syntax, e.g. "60-M").
func rateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}
