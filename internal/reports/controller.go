package reports

import (
	"context"
	"errors"
	"net/http"

	"bilheteria/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Controller interface {
	GetOverview(c *gin.Context)
	GetStatusSummary(c *gin.Context)
	GetCategoryBreakdown(c *gin.Context)
	GetPDVBreakdown(c *gin.Context)
	GetDailyByClass(c *gin.Context)
	GetDailyByPDV(c *gin.Context)
	GetSeatReport(c *gin.Context)
	GetTicketTypeChart(c *gin.Context)
	GetClassChart(c *gin.Context)
	GetLotChart(c *gin.Context)
	GetPDVRankingChart(c *gin.Context)
	GetPaymentChart(c *gin.Context)
	GetPeriodicChart(c *gin.Context)
	GetHourlyChart(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new reports controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetOverview(c *gin.Context) {
	ctrl.serve(c, "Event overview", func(ctx context.Context, eventID uuid.UUID) (interface{}, error) {
		return ctrl.service.GetOverview(ctx, eventID)
	})
}

func (ctrl *controller) GetStatusSummary(c *gin.Context) {
	ctrl.serve(c, "Status summary", func(ctx context.Context, eventID uuid.UUID) (interface{}, error) {
		return ctrl.service.GetStatusSummary(ctx, eventID)
	})
}

func (ctrl *controller) GetCategoryBreakdown(c *gin.Context) {
	ctrl.serve(c, "Category breakdown", func(ctx context.Context, eventID uuid.UUID) (interface{}, error) {
		return ctrl.service.GetCategoryBreakdown(ctx, eventID)
	})
}

func (ctrl *controller) GetPDVBreakdown(c *gin.Context) {
	ctrl.serve(c, "PDV breakdown", func(ctx context.Context, eventID uuid.UUID) (interface{}, error) {
		return ctrl.service.GetPDVBreakdown(ctx, eventID)
	})
}

func (ctrl *controller) GetDailyByClass(c *gin.Context) {
	ctrl.serve(c, "Daily breakdown by class", func(ctx context.Context, eventID uuid.UUID) (interface{}, error) {
		return ctrl.service.GetDailyByClass(ctx, eventID)
	})
}

func (ctrl *controller) GetDailyByPDV(c *gin.Context) {
	ctrl.serve(c, "Daily breakdown by PDV", func(ctx context.Context, eventID uuid.UUID) (interface{}, error) {
		return ctrl.service.GetDailyByPDV(ctx, eventID)
	})
}

func (ctrl *controller) GetSeatReport(c *gin.Context) {
	ctrl.serve(c, "Numbered-seat report", func(ctx context.Context, eventID uuid.UUID) (interface{}, error) {
		return ctrl.service.GetSeatReport(ctx, eventID)
	})
}

func (ctrl *controller) GetTicketTypeChart(c *gin.Context) {
	ctrl.serveChart(c, "Ticket-type chart", func(charts *SalesCharts) interface{} { return charts.TicketTypes })
}

func (ctrl *controller) GetClassChart(c *gin.Context) {
	ctrl.serveChart(c, "Class chart", func(charts *SalesCharts) interface{} { return charts.Classes })
}

func (ctrl *controller) GetLotChart(c *gin.Context) {
	ctrl.serveChart(c, "Lot chart", func(charts *SalesCharts) interface{} { return charts.Lots })
}

func (ctrl *controller) GetPDVRankingChart(c *gin.Context) {
	ctrl.serveChart(c, "PDV ranking chart", func(charts *SalesCharts) interface{} { return charts.PDVRanking })
}

func (ctrl *controller) GetPaymentChart(c *gin.Context) {
	ctrl.serveChart(c, "Payment-method chart", func(charts *SalesCharts) interface{} { return charts.Payments })
}

func (ctrl *controller) GetPeriodicChart(c *gin.Context) {
	ctrl.serveChart(c, "Periodic chart", func(charts *SalesCharts) interface{} { return charts.Periodic })
}

func (ctrl *controller) GetHourlyChart(c *gin.Context) {
	ctrl.serveChart(c, "Hour-of-day chart", func(charts *SalesCharts) interface{} { return charts.Hourly })
}

func (ctrl *controller) serve(c *gin.Context, name string, build func(context.Context, uuid.UUID) (interface{}, error)) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event id", nil, err.Error())
		return
	}

	payload, err := build(c.Request.Context(), eventID)
	if err != nil {
		respondReportError(c, name, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, name+" retrieved successfully", payload, nil)
}

func (ctrl *controller) serveChart(c *gin.Context, name string, pick func(*SalesCharts) interface{}) {
	ctrl.serve(c, name, func(ctx context.Context, eventID uuid.UUID) (interface{}, error) {
		charts, err := ctrl.service.GetSalesCharts(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return pick(charts), nil
	})
}

// Reports fail closed: any storage failure aborts the request with a generic
// failure plus the underlying message, never a partial payload.
func respondReportError(c *gin.Context, name string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
		return
	}
	response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to generate "+name, nil, err.Error())
}
