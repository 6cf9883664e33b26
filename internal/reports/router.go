package reports

import (
	"bilheteria/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReportRoutes configures all report routes
func SetupReportRoutes(rg *gin.RouterGroup, controller Controller) {
	reports := rg.Group("/events/:id/reports")
	reports.Use(middleware.JWTAuth(), middleware.RequireRoles("PROMOTER", "ADMIN"))
	{
		reports.GET("/overview", controller.GetOverview)    // GET /api/v1/events/:id/reports/overview
		reports.GET("/status", controller.GetStatusSummary) // GET /api/v1/events/:id/reports/status
		reports.GET("/categories", controller.GetCategoryBreakdown)
		reports.GET("/pdvs", controller.GetPDVBreakdown)
		reports.GET("/daily/classes", controller.GetDailyByClass)
		reports.GET("/daily/pdvs", controller.GetDailyByPDV)
		reports.GET("/seats", controller.GetSeatReport)

		charts := reports.Group("/charts")
		{
			charts.GET("/ticket-types", controller.GetTicketTypeChart)
			charts.GET("/classes", controller.GetClassChart)
			charts.GET("/lots", controller.GetLotChart)
			charts.GET("/pdv-ranking", controller.GetPDVRankingChart)
			charts.GET("/payments", controller.GetPaymentChart)
			charts.GET("/periodic", controller.GetPeriodicChart)
			charts.GET("/hourly", controller.GetHourlyChart)
		}
	}
}
