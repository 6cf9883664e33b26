package inventory

import (
	"errors"
	"net/http"

	"bilheteria/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	AdjustLotStock(c *gin.Context)
	SetSeatAvailability(c *gin.Context)
	AdjustCompanionQuota(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new inventory controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

// AdjustLotStock handles POST /inventory/lots/adjust
func (ctrl *controller) AdjustLotStock(c *gin.Context) {
	var req AdjustLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.AdjustLotStock(c.Request.Context(), req)
	if err != nil {
		respondAdjustmentError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Lot stock adjusted", result, nil)
}

// SetSeatAvailability handles POST /inventory/seats/availability
func (ctrl *controller) SetSeatAvailability(c *gin.Context) {
	var req SeatAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.SetSeatAvailability(c.Request.Context(), req)
	if err != nil {
		respondAdjustmentError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat availability updated", result, nil)
}

// AdjustCompanionQuota handles POST /inventory/quotas/adjust
func (ctrl *controller) AdjustCompanionQuota(c *gin.Context) {
	var req AdjustQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.AdjustCompanionQuota(c.Request.Context(), req)
	if err != nil {
		respondAdjustmentError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Companion quota adjusted", result, nil)
}

// respondAdjustmentError maps domain rejections to their HTTP codes; anything
// else is a storage failure and fails closed as 500.
func respondAdjustmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, ErrLotNotFound), errors.Is(err, ErrQuotaNotFound), errors.Is(err, ErrSeatsNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, ErrLotNotCurrent):
		response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrInsufficientCompanionQuota):
		response.RespondJSON(c, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Adjustment failed", nil, err.Error())
	}
}
