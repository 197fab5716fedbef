package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/models"
)

type RootResponse struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Accounts         string `json:"accounts" example:"https://example.com/api/v1/accounts"`                  // URL of Account collection endpoint
	CreditCards      string `json:"creditCards" example:"https://example.com/api/v1/credit-cards"`           // URL of Credit Card collection endpoint
	Categories       string `json:"categories" example:"https://example.com/api/v1/categories"`              // URL of Category collection endpoint
	ThirdParties     string `json:"thirdParties" example:"https://example.com/api/v1/third-parties"`         // URL of Third Party collection endpoint
	Transactions     string `json:"transactions" example:"https://example.com/api/v1/transactions"`          // URL of Transaction collection endpoint
	Receivables      string `json:"receivables" example:"https://example.com/api/v1/receivables"`            // URL of Receivable collection endpoint
	ScheduledIncomes string `json:"scheduledIncomes" example:"https://example.com/api/v1/scheduled-incomes"` // URL of Scheduled Income collection endpoint
	Months           string `json:"months" example:"https://example.com/api/v1/months"`                      // URL of Month endpoint
	Profile          string `json:"profile" example:"https://example.com/api/v1/profile"`                    // URL of the profile endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: Links{
			Accounts:         url + "/v1/accounts",
			CreditCards:      url + "/v1/credit-cards",
			Categories:       url + "/v1/categories",
			ThirdParties:     url + "/v1/third-parties",
			Transactions:     url + "/v1/transactions",
			Receivables:      url + "/v1/receivables",
			ScheduledIncomes: url + "/v1/scheduled-incomes",
			Months:           url + "/v1/months",
			Profile:          url + "/v1/profile",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
