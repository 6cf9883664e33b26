package inventory

import (
	"bilheteria/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupInventoryRoutes configures the inventory-ledger routes
func SetupInventoryRoutes(rg *gin.RouterGroup, controller Controller) {
	inventory := rg.Group("/inventory")
	inventory.Use(middleware.JWTAuth(), middleware.RequireRoles("CHECKOUT", "ADMIN"))
	{
		inventory.POST("/lots/adjust", controller.AdjustLotStock)             // POST /api/v1/inventory/lots/adjust
		inventory.POST("/seats/availability", controller.SetSeatAvailability) // POST /api/v1/inventory/seats/availability
		inventory.POST("/quotas/adjust", controller.AdjustCompanionQuota)     // POST /api/v1/inventory/quotas/adjust
	}
}
