package handlers

import (
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/middleware"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Every v1 route requires an acting user for the audit trail
	v1 := r.Group("/api/v1", middleware.ActorMiddleware())

	registerAccountRoutes(v1, service.Account)
	registerJournalRoutes(v1, service.Ledger)
	registerBillRoutes(v1, service.Subsidiary)
	registerExpenseRoutes(v1, service.Subsidiary)
	registerReportingRoutes(v1, service.Reporting)

	// Statement uploads fan out into many row-level settlements, so this is
	// the one route worth rate limiting.
	reconcileLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: cfg.RateLimitPeriod,
		Limit:  cfg.RateLimitCount,
	})
	reconcile := v1.Group("", middleware.RateLimit(reconcileLimiter))
	registerReconciliationRoutes(reconcile, service.Reconciliation)
}
