package ledger

import (
	"errors"
	"net/http"

	"bilheteria/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	GetDetailedLedger(c *gin.Context)
	GetCancelledLedger(c *gin.Context)
	GetFilterOptions(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new ledger controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetDetailedLedger handles GET /events/:id/ledger
func (ctrl *controller) GetDetailedLedger(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	var params QueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetDetailedLedger(c.Request.Context(), eventID, params)
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to generate ledger", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ledger retrieved successfully", result, nil)
}

// GetCancelledLedger handles GET /events/:id/ledger/cancelled
func (ctrl *controller) GetCancelledLedger(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	result, err := ctrl.service.GetCancelledLedger(c.Request.Context(), eventID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to generate cancelled ledger", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cancelled ledger retrieved successfully", result, nil)
}

// GetFilterOptions handles GET /events/:id/ledger/filters
func (ctrl *controller) GetFilterOptions(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	result, err := ctrl.service.GetFilterOptions(c.Request.Context(), eventID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list filter options", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Filter options retrieved successfully", result, nil)
}

func parseEventID(c *gin.Context) (uuid.UUID, bool) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event id", nil, err.Error())
		return uuid.Nil, false
	}
	return eventID, true
}
