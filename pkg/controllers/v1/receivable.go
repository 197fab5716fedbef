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

type ReceivableEditable struct {
	ThirdPartyID uuid.UUID       `json:"thirdPartyId" example:"5a1f9b2e-8c3d-4e6f-9a0b-1c2d3e4f5a6b"` // The third party that owes the money
	Description  string          `json:"description" example:"Concert tickets"`                       // What the money is owed for
	Amount       decimal.Decimal `json:"amount" example:"120.00"`                                     // Amount owed
	DueDate      time.Time       `json:"dueDate" example:"2024-01-10T00:00:00Z"`                      // Date the money is due
}

func (editable ReceivableEditable) model() models.Receivable {
	return models.Receivable{
		ThirdPartyID: editable.ThirdPartyID,
		Description:  editable.Description,
		Amount:       editable.Amount,
		DueDate:      editable.DueDate,
	}
}

// RegisterReceivableRoutes registers the routes for receivables with
// the RouterGroup that is passed.
func (co Controller) RegisterReceivableRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReceivableList)
		r.GET("", co.GetReceivables)
		r.POST("", co.CreateReceivable)
	}

	// Receivable with ID
	{
		r.OPTIONS("/:id", co.OptionsReceivableDetail)
		r.GET("/:id", co.GetReceivable)
		r.PATCH("/:id", co.UpdateReceivable)
		r.DELETE("/:id", co.DeleteReceivable)
		r.OPTIONS("/:id/payments", OptionsReceivablePayments)
		r.POST("/:id/payments", co.RecordReceivablePayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receivables
// @Success		204
// @Router			/v1/receivables [options]
func OptionsReceivableList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receivables
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the receivable"
// @Router			/v1/receivables/{id} [options]
func (co Controller) OptionsReceivableDetail(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.store.GetReceivable(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receivables
// @Success		204
// @Param			id	path	URIID	true	"ID of the receivable"
// @Router			/v1/receivables/{id}/payments [options]
func OptionsReceivablePayments(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List receivables
// @Description	Returns all receivables, sorted by due date
// @Tags			Receivables
// @Produce		json
// @Success		200	{object}	ListResponse[models.Receivable]
// @Failure		500	{object}	httpError
// @Router			/v1/receivables [get]
func (co Controller) GetReceivables(c *gin.Context) {
	receivables, err := co.store.ListReceivables(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(receivables))
}

// @Summary		Create receivable
// @Description	Creates a receivable that is not linked to a transaction
// @Tags			Receivables
// @Produce		json
// @Success		201			{object}	Response[models.Receivable]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			receivable	body		ReceivableEditable	true	"Receivable"
// @Router			/v1/receivables [post]
func (co Controller) CreateReceivable(c *gin.Context) {
	var editable ReceivableEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	receivable, err := co.store.CreateReceivable(c.Request.Context(), owners(c), editable.model())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newResponse(receivable))
}

// @Summary		Get receivable
// @Description	Returns a specific receivable
// @Tags			Receivables
// @Produce		json
// @Success		200	{object}	Response[models.Receivable]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the receivable"
// @Router			/v1/receivables/{id} [get]
func (co Controller) GetReceivable(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	receivable, err := co.store.GetReceivable(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(receivable))
}

// @Summary		Update receivable
// @Description	Updates a receivable. Only values to be updated need to be specified.
// @Description	Payments can only be recorded through the payments endpoint.
// @Tags			Receivables
// @Produce		json
// @Success		200			{object}	Response[models.Receivable]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID					true	"ID of the receivable"
// @Param			receivable	body		store.ReceivableUpdate	true	"Receivable"
// @Router			/v1/receivables/{id} [patch]
func (co Controller) UpdateReceivable(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var update store.ReceivableUpdate
	if err := httputil.BindData(c, &update); err != nil {
		fail(c, err)
		return
	}

	receivable, err := co.store.UpdateReceivable(c.Request.Context(), owners(c), id, update)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(receivable))
}

// @Summary		Delete receivable
// @Description	Deletes a receivable
// @Tags			Receivables
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the receivable"
// @Router			/v1/receivables/{id} [delete]
func (co Controller) DeleteReceivable(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.store.DeleteReceivable(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Record payment
// @Description	Records a payment for a receivable and creates the income transaction for it
// @Tags			Receivables
// @Produce		json
// @Success		201		{object}	Response[settlement.PaymentResult]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ID of the receivable"
// @Param			payment	body		Payment	true	"Payment"
// @Router			/v1/receivables/{id}/payments [post]
func (co Controller) RecordReceivablePayment(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var payment Payment
	if err := httputil.BindData(c, &payment); err != nil {
		fail(c, err)
		return
	}

	result, err := co.engine.RecordPayment(c.Request.Context(), owners(c), id, payment.Amount, payment.DestinationAccountID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newResponse(result))
}
