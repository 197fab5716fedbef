package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/reports"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/dashboard", OptionsDashboard)
	r.GET("/:month/dashboard", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month	path	URIMonth	true	"Year and month, e.g. 2024-01"
// @Router			/v1/months/{month}/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Dashboard
// @Description	Returns the summary, balances, top categories, recent transactions, receivables and reminders for a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	Response[reports.Overview]
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		URIMonth	true	"Year and month, e.g. 2024-01"
// @Router			/v1/months/{month}/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, errMonthInvalid)
		return
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		fail(c, errMonthInvalid)
		return
	}

	s, err := co.store.Load(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	overview := reports.Dashboard(s, month, reports.OptionsFromConfig(co.cfg, co.now()))
	c.JSON(http.StatusOK, newResponse(overview))
}
