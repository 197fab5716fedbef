package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/ledger"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name               string             `json:"name" example:"Nubank"`                             // Name of the account
	Bank               string             `json:"bank" example:"Nu Pagamentos S.A."`                 // Bank that holds the account
	Type               models.AccountType `json:"type" example:"checking"`                           // One of checking, savings, payment, other. Defaults to checking
	InitialBalance     decimal.Decimal    `json:"initialBalance" example:"1500.00"`                  // Balance before any transactions were recorded. Cannot be changed later
	InitialBalanceDate time.Time          `json:"initialBalanceDate" example:"2024-01-01T00:00:00Z"` // Date of the initial balance. Cannot be changed later
	Color              string             `json:"color" example:"#8a05be"`                           // Display color
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:               editable.Name,
		Bank:               editable.Bank,
		Type:               editable.Type,
		InitialBalance:     editable.InitialBalance,
		InitialBalanceDate: editable.InitialBalanceDate,
		Color:              editable.Color,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
}

// Account is an account with its current balance.
type Account struct {
	models.Account
	Balance decimal.Decimal `json:"balance" example:"2310.17"` // Initial balance plus income minus expenses
	Links   AccountLinks    `json:"links"`
}

func newAccount(c *gin.Context, s store.Snapshot, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		Account: model,
		Balance: ledger.AccountBalance(s, model.ID),
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.PATCH("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the account"
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.store.GetAccount(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List accounts
// @Description	Returns all accounts with their current balance
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	ListResponse[Account]
// @Failure		500	{object}	httpError
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	s, err := co.store.Load(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]Account, 0, len(s.Accounts))
	for _, account := range s.Accounts {
		data = append(data, newAccount(c, s, account))
	}

	c.JSON(http.StatusOK, newListResponse(data))
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	Response[Account]
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	account, err := co.store.CreateAccount(c.Request.Context(), owners(c), editable.model())
	if err != nil {
		fail(c, err)
		return
	}

	// A new account has no transactions yet
	c.JSON(http.StatusCreated, newResponse(newAccount(c, store.Snapshot{Accounts: []models.Account{account}}, account)))
}

// @Summary		Get account
// @Description	Returns a specific account with its current balance
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	Response[Account]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	account, err := co.store.GetAccount(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	s, err := co.store.Load(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(newAccount(c, s, account)))
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	Response[Account]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID				true	"ID of the account"
// @Param			account	body		store.AccountUpdate	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func (co Controller) UpdateAccount(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var update store.AccountUpdate
	if err := httputil.BindData(c, &update); err != nil {
		fail(c, err)
		return
	}

	account, err := co.store.UpdateAccount(c.Request.Context(), owners(c), id, update)
	if err != nil {
		fail(c, err)
		return
	}

	s, err := co.store.Load(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(newAccount(c, s, account)))
}

// @Summary		Delete account
// @Description	Deletes an account. Transactions on the account are kept without it.
// @Tags			Accounts
// @Success		200	{object}	Response[store.Unlinked]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the account"
// @Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	unlinked, err := co.store.DeleteAccount(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(unlinked))
}
