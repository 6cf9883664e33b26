package inventory

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Identifier parse failures are the caller's fault; everything the repository
// cannot classify is a storage failure and must surface as 500, never 400.
func TestAdjustmentErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid lot id", fmt.Errorf("%w: lot id %q", ErrInvalidID, "not-a-uuid"), http.StatusBadRequest},
		{"lot not found", ErrLotNotFound, http.StatusNotFound},
		{"quota not found", ErrQuotaNotFound, http.StatusNotFound},
		{"seats not found", ErrSeatsNotFound, http.StatusNotFound},
		{"lot not current", ErrLotNotCurrent, http.StatusConflict},
		{"insufficient stock", ErrInsufficientStock, http.StatusUnprocessableEntity},
		{"insufficient companion quota", ErrInsufficientCompanionQuota, http.StatusUnprocessableEntity},
		{"storage failure", errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondAdjustmentError(c, tt.err)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
