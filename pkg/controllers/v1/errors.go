package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/household-finance/backend/pkg/models"
)

type httpError struct {
	Data  any    `json:"data"`
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// fail writes the error response for err.
func fail(c *gin.Context, err error) {
	c.AbortWithStatusJSON(status(err), httpError{
		Error: err.Error(),
	})
}

var (
	errOwnerHeader  = models.Validationf("the X-Owner-ID header must be set to a valid UUID")
	errMonthInvalid = models.Validationf("the month must be in the format YYYY-MM")
)
