package handlers

import (
	"github.com/SscSPs/brew_notes_app/cmd/docs"
	portssvc "github.com/SscSPs/brew_notes_app/internal/core/ports/services"
	"github.com/SscSPs/brew_notes_app/internal/metrics"
	"github.com/SscSPs/brew_notes_app/internal/middleware"
	"github.com/SscSPs/brew_notes_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// POST routes are guarded by lim when it is non-nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	lim *limiter.Limiter,
) {
	r.SetHTMLTemplate(loadTemplates())

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	var writeGuards []gin.HandlerFunc
	if lim != nil {
		writeGuards = append(writeGuards, middleware.RateLimit(lim))
	}

	home := registerHomeRoutes(r, services)
	registerExciseRoutes(r, services.Excise, home, writeGuards...)
	registerBatchRoutes(r, services.Batch, home, writeGuards...)
	registerDutyRateRoutes(r, services.DutyRate, writeGuards...)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
