package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
)

type ScheduledIncomeEditable struct {
	Description  string          `json:"description" example:"Salary"`                // What the income is
	Amount       decimal.Decimal `json:"amount" example:"5400.00"`                    // Expected amount
	ExpectedDate time.Time       `json:"expectedDate" example:"2024-02-05T00:00:00Z"` // Date the income is expected
	Notes        string          `json:"notes" example:"Includes vacation bonus"`     // Free text notes
}

func (editable ScheduledIncomeEditable) model() models.ScheduledIncome {
	return models.ScheduledIncome{
		Description:  editable.Description,
		Amount:       editable.Amount,
		ExpectedDate: editable.ExpectedDate,
		Notes:        editable.Notes,
	}
}

// Confirmation confirms that a scheduled income has been received.
type Confirmation struct {
	Amount               decimal.Decimal `json:"amount" example:"5400.00"`                                            // Amount received, can differ from the expected amount
	Date                 time.Time       `json:"date" example:"2024-02-05T00:00:00Z"`                                 // Date the income was received
	DestinationAccountID uuid.UUID       `json:"destinationAccountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Account the income was received on
}

// RegisterScheduledIncomeRoutes registers the routes for scheduled incomes with
// the RouterGroup that is passed.
func (co Controller) RegisterScheduledIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsScheduledIncomeList)
		r.GET("", co.GetScheduledIncomes)
		r.POST("", co.CreateScheduledIncome)
	}

	// Scheduled income with ID
	{
		r.OPTIONS("/:id", co.OptionsScheduledIncomeDetail)
		r.GET("/:id", co.GetScheduledIncome)
		r.PATCH("/:id", co.UpdateScheduledIncome)
		r.DELETE("/:id", co.DeleteScheduledIncome)
		r.OPTIONS("/:id/confirm", OptionsScheduledIncomeConfirm)
		r.POST("/:id/confirm", co.ConfirmScheduledIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scheduled Incomes
// @Success		204
// @Router			/v1/scheduled-incomes [options]
func OptionsScheduledIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scheduled Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the scheduled income"
// @Router			/v1/scheduled-incomes/{id} [options]
func (co Controller) OptionsScheduledIncomeDetail(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.store.GetScheduledIncome(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scheduled Incomes
// @Success		204
// @Param			id	path	URIID	true	"ID of the scheduled income"
// @Router			/v1/scheduled-incomes/{id}/confirm [options]
func OptionsScheduledIncomeConfirm(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List scheduled incomes
// @Description	Returns all scheduled incomes, sorted by expected date
// @Tags			Scheduled Incomes
// @Produce		json
// @Success		200	{object}	ListResponse[models.ScheduledIncome]
// @Failure		500	{object}	httpError
// @Router			/v1/scheduled-incomes [get]
func (co Controller) GetScheduledIncomes(c *gin.Context) {
	incomes, err := co.store.ListScheduledIncomes(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(incomes))
}

// @Summary		Create scheduled income
// @Description	Creates a new scheduled income
// @Tags			Scheduled Incomes
// @Produce		json
// @Success		201				{object}	Response[models.ScheduledIncome]
// @Failure		400				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			scheduledIncome	body		ScheduledIncomeEditable	true	"Scheduled income"
// @Router			/v1/scheduled-incomes [post]
func (co Controller) CreateScheduledIncome(c *gin.Context) {
	var editable ScheduledIncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	income, err := co.store.CreateScheduledIncome(c.Request.Context(), owners(c), editable.model())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newResponse(income))
}

// @Summary		Get scheduled income
// @Description	Returns a specific scheduled income
// @Tags			Scheduled Incomes
// @Produce		json
// @Success		200	{object}	Response[models.ScheduledIncome]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the scheduled income"
// @Router			/v1/scheduled-incomes/{id} [get]
func (co Controller) GetScheduledIncome(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	income, err := co.store.GetScheduledIncome(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(income))
}

// @Summary		Update scheduled income
// @Description	Updates a scheduled income that has not been received yet
// @Tags			Scheduled Incomes
// @Produce		json
// @Success		200				{object}	Response[models.ScheduledIncome]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID						true	"ID of the scheduled income"
// @Param			scheduledIncome	body		store.ScheduledIncomeUpdate	true	"Scheduled income"
// @Router			/v1/scheduled-incomes/{id} [patch]
func (co Controller) UpdateScheduledIncome(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var update store.ScheduledIncomeUpdate
	if err := httputil.BindData(c, &update); err != nil {
		fail(c, err)
		return
	}

	income, err := co.store.UpdateScheduledIncome(c.Request.Context(), owners(c), id, update)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(income))
}

// @Summary		Delete scheduled income
// @Description	Deletes a scheduled income
// @Tags			Scheduled Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the scheduled income"
// @Router			/v1/scheduled-incomes/{id} [delete]
func (co Controller) DeleteScheduledIncome(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.store.DeleteScheduledIncome(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Confirm receipt
// @Description	Confirms that a scheduled income was received and records the income transaction.
// @Description	A scheduled income can only be confirmed once.
// @Tags			Scheduled Incomes
// @Produce		json
// @Success		201				{object}	Response[settlement.Receipt]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		409				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID			true	"ID of the scheduled income"
// @Param			confirmation	body		Confirmation	true	"Confirmation"
// @Router			/v1/scheduled-incomes/{id}/confirm [post]
func (co Controller) ConfirmScheduledIncome(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var confirmation Confirmation
	if err := httputil.BindData(c, &confirmation); err != nil {
		fail(c, err)
		return
	}

	receipt, err := co.engine.ConfirmScheduledIncomeReceipt(c.Request.Context(), owners(c), id, confirmation.Amount, confirmation.Date, confirmation.DestinationAccountID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newResponse(receipt))
}
