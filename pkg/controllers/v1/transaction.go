package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/types"
	hf_uuid "github.com/household-finance/backend/internal/uuid"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type TransactionEditable struct {
	Type         models.TransactionType   `json:"type" example:"expense"`                                      // One of income, expense
	Description  string                   `json:"description" example:"Supermarket"`                           // What the transaction was for
	Amount       decimal.Decimal          `json:"amount" example:"152.37"`                                     // Total amount. For installments, the amount of the whole purchase
	Date         time.Time                `json:"date" example:"2024-01-21T00:00:00Z"`                         // Date of the transaction
	DueDate      *time.Time               `json:"dueDate" example:"2024-02-05T00:00:00Z"`                      // Date the transaction is due
	Responsible  models.Responsible       `json:"responsible" example:"self"`                                  // One of self, partner, third_party. Defaults to self
	Status       models.TransactionStatus `json:"status" example:"completed"`                                  // One of pending, completed, paid. Defaults to completed
	AccountID    *uuid.UUID               `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // Account of the transaction. Cannot be combined with a credit card
	CreditCardID *uuid.UUID               `json:"creditCardId" example:"0a3e2b0c-4cde-4b1f-8a4f-0d7fa5b2f0d1"` // Credit card of the transaction
	CategoryID   *uuid.UUID               `json:"categoryId" example:"d0f6e6a1-7c2b-4d8e-9f3a-5b6c7d8e9f0a"`   // Category of the transaction
	ThirdPartyID *uuid.UUID               `json:"thirdPartyId" example:"5a1f9b2e-8c3d-4e6f-9a0b-1c2d3e4f5a6b"` // Required for expenses with responsible third_party
	Installments int                      `json:"installments" example:"3" minimum:"1" maximum:"360"`          // Number of installments. Defaults to 1
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:         editable.Type,
		Description:  editable.Description,
		Amount:       editable.Amount,
		Date:         editable.Date,
		DueDate:      editable.DueDate,
		Responsible:  editable.Responsible,
		Status:       editable.Status,
		AccountID:    editable.AccountID,
		CreditCardID: editable.CreditCardID,
		CategoryID:   editable.CategoryID,
		ThirdPartyID: editable.ThirdPartyID,
	}
}

type TransactionQueryFilter struct {
	Month      string       `form:"month" example:"2024-01"` // Year and month
	Account    hf_uuid.UUID `form:"account"`                 // By account ID
	CreditCard hf_uuid.UUID `form:"creditCard"`              // By credit card ID
	ThirdParty hf_uuid.UUID `form:"thirdParty"`              // By third party ID
}

func (f TransactionQueryFilter) model() (store.TransactionFilter, error) {
	var filter store.TransactionFilter

	if f.Month != "" {
		month, err := types.ParseMonth(f.Month)
		if err != nil {
			return store.TransactionFilter{}, errMonthInvalid
		}
		filter.Month = month
	}

	filter.AccountID = f.Account.Ptr()
	filter.CreditCardID = f.CreditCard.Ptr()
	filter.ThirdPartyID = f.ThirdParty.Ptr()

	return filter, nil
}

// transactionUpdateFields are the JSON fields of a transaction that can be updated.
var transactionUpdateFields = []string{"status", "categoryId"}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.store.GetTransaction(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List transactions
// @Description	Returns the transactions matching the filter, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	ListResponse[models.Transaction]
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			month		query		string	false	"Year and month, e.g. 2024-01"
// @Param			account		query		string	false	"Filter by account ID"
// @Param			creditCard	query		string	false	"Filter by credit card ID"
// @Param			thirdParty	query		string	false	"Filter by third party ID"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, models.Validationf("%s", err.Error()))
		return
	}

	filter, err := query.model()
	if err != nil {
		fail(c, err)
		return
	}

	transactions, err := co.store.ListTransactions(c.Request.Context(), owners(c), filter)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(transactions))
}

// @Summary		Create transaction
// @Description	Creates a transaction. Purchases in installments create one transaction per installment.
// @Description	Expenses for a third party create a receivable for each transaction.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	Response[settlement.Added]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	added, err := co.engine.AddTransaction(c.Request.Context(), owners(c), editable.model(), editable.Installments)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newResponse(added))
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	Response[models.Transaction]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	transaction, err := co.store.GetTransaction(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(transaction))
}

// @Summary		Update transaction
// @Description	Updates the status or category of a transaction. All other fields cannot be changed.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	Response[models.Transaction]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID						true	"ID of the transaction"
// @Param			transaction	body		store.TransactionUpdate	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	fields, err := httputil.BodyFields(c)
	if err != nil {
		fail(c, err)
		return
	}

	for _, field := range fields {
		if !slices.Contains(transactionUpdateFields, field) {
			fail(c, models.ErrTransactionFieldImmutable)
			return
		}
	}

	var update store.TransactionUpdate
	if err := httputil.BindData(c, &update); err != nil {
		fail(c, err)
		return
	}

	transaction, err := co.store.UpdateTransaction(c.Request.Context(), owners(c), id, update)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(transaction))
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. Receivables created for it are kept.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.store.DeleteTransaction(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
