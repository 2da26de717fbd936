package handlers

import (
	"net/http"

	"github.com/SscSPs/accountflow_ledger/cmd/docs"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
	"github.com/SscSPs/accountflow_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	dto.RegisterValidators()

	r.GET("/health", getHealth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterV1Routes(v1, services)

	setupSwaggerRoutes(r, cfg)
}

// RegisterV1Routes delegates route registration to the per-resource handlers.
func RegisterV1Routes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer) {
	dto.RegisterValidators()

	registerBillingPlanRoutes(v1, services.BillingPlan)
	registerAccountRoutes(v1, services.Account)
	registerPresetRoutes(v1, services.Preset)
	registerTitleRoutes(v1, services.Title)
	registerEntryRoutes(v1, services.Entry)
	registerJournalRoutes(v1, services.Journal)
}

// getHealth godoc
// @Summary Show the status of server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
