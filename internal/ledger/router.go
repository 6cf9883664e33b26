package ledger

import (
	"bilheteria/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupLedgerRoutes configures the detailed and cancelled ledger routes
func SetupLedgerRoutes(rg *gin.RouterGroup, controller Controller) {
	ledger := rg.Group("/events/:id/ledger")
	ledger.Use(middleware.JWTAuth(), middleware.RequireRoles("PROMOTER", "ADMIN"))
	{
		ledger.GET("", controller.GetDetailedLedger)            // GET /api/v1/events/:id/ledger
		ledger.GET("/cancelled", controller.GetCancelledLedger) // GET /api/v1/events/:id/ledger/cancelled
		ledger.GET("/filters", controller.GetFilterOptions)     // GET /api/v1/events/:id/ledger/filters
	}
}
