package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/moliya-app/moliya-backend/cmd/docs"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/middleware"
	"github.com/moliya-app/moliya-backend/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	r.GET("/health", healthCheck)

	registerAuthRoutes(r, cfg, services.User, authRateLimiter(cfg))

	setupAPIRoutes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the authenticated /api group and delegates to the
// per-entity route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(api, services.Account)
	registerCategoryRoutes(api, services.Category)
	registerTransactionRoutes(api, services.Transaction)
	registerTransferRoutes(api, services.Transfer)
	registerBudgetRoutes(api, services.Budget)
	registerDebtRoutes(api, services.Debt)
}

// authRateLimiter builds the IP rate limiter applied to /api/auth routes.
func authRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		log.Printf("Warning: Invalid AUTH_RATE_LIMIT (%q), defaulting to 10-M.\n", cfg.AuthRateLimit)
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
