package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/ledger"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
)

type CreditCardEditable struct {
	Name       string              `json:"name" example:"Platinum"`                          // Name of the card
	Brand      models.CardBrand    `json:"brand" example:"visa"`                             // One of visa, mastercard, elo, amex, other. Optional
	Issuer     string              `json:"issuer" example:"Itaú"`                            // Bank that issued the card
	ClosingDay int                 `json:"closingDay" example:"20" minimum:"1" maximum:"31"` // Day of the month the bill closes
	DueDay     int                 `json:"dueDay" example:"28" minimum:"1" maximum:"31"`     // Day of the month the bill is due
	Limit      decimal.NullDecimal `json:"limit" swaggertype:"string" example:"5000.00"`     // Credit limit. Optional
	Color      string              `json:"color" example:"#1a1f71"`                          // Display color
}

func (editable CreditCardEditable) model() models.CreditCard {
	return models.CreditCard{
		Name:       editable.Name,
		Brand:      editable.Brand,
		Issuer:     editable.Issuer,
		ClosingDay: editable.ClosingDay,
		DueDay:     editable.DueDay,
		Limit:      editable.Limit,
		Color:      editable.Color,
	}
}

type CreditCardLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/credit-cards/0a3e2b0c-4cde-4b1f-8a4f-0d7fa5b2f0d1"`                    // The credit card itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?creditCard=0a3e2b0c-4cde-4b1f-8a4f-0d7fa5b2f0d1"` // Transactions on the credit card
}

// CreditCard is a credit card with its current bill.
type CreditCard struct {
	models.CreditCard
	CurrentBill   decimal.Decimal `json:"currentBill" example:"980.00"`    // Amount of the current bill
	MonthExpenses decimal.Decimal `json:"monthExpenses" example:"1250.00"` // Expenses in the current calendar month
	Links         CreditCardLinks `json:"links"`
}

func (co Controller) newCreditCard(c *gin.Context, s store.Snapshot, model models.CreditCard) CreditCard {
	url := c.GetString(string(models.DBContextURL))
	now := co.now()

	return CreditCard{
		CreditCard:    model,
		CurrentBill:   ledger.CreditCardCurrentBill(s, model.ID, now, co.cfg.BillPolicy),
		MonthExpenses: ledger.CardExpenses(s, model.ID, types.MonthOf(now)),
		Links: CreditCardLinks{
			Self:         fmt.Sprintf("%s/v1/credit-cards/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?creditCard=%s", url, model.ID),
		},
	}
}

// RegisterCreditCardRoutes registers the routes for credit cards with
// the RouterGroup that is passed.
func (co Controller) RegisterCreditCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCreditCardList)
		r.GET("", co.GetCreditCards)
		r.POST("", co.CreateCreditCard)
	}

	// Credit card with ID
	{
		r.OPTIONS("/:id", co.OptionsCreditCardDetail)
		r.GET("/:id", co.GetCreditCard)
		r.PATCH("/:id", co.UpdateCreditCard)
		r.DELETE("/:id", co.DeleteCreditCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit Cards
// @Success		204
// @Router			/v1/credit-cards [options]
func OptionsCreditCardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the credit card"
// @Router			/v1/credit-cards/{id} [options]
func (co Controller) OptionsCreditCardDetail(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.store.GetCreditCard(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List credit cards
// @Description	Returns all credit cards with their current bill
// @Tags			Credit Cards
// @Produce		json
// @Success		200	{object}	ListResponse[CreditCard]
// @Failure		500	{object}	httpError
// @Router			/v1/credit-cards [get]
func (co Controller) GetCreditCards(c *gin.Context) {
	s, err := co.store.Load(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]CreditCard, 0, len(s.CreditCards))
	for _, card := range s.CreditCards {
		data = append(data, co.newCreditCard(c, s, card))
	}

	c.JSON(http.StatusOK, newListResponse(data))
}

// @Summary		Create credit card
// @Description	Creates a new credit card
// @Tags			Credit Cards
// @Produce		json
// @Success		201			{object}	Response[CreditCard]
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			creditCard	body		CreditCardEditable	true	"Credit card"
// @Router			/v1/credit-cards [post]
func (co Controller) CreateCreditCard(c *gin.Context) {
	var editable CreditCardEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	card, err := co.store.CreateCreditCard(c.Request.Context(), owners(c), editable.model())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newResponse(co.newCreditCard(c, store.Snapshot{CreditCards: []models.CreditCard{card}}, card)))
}

// @Summary		Get credit card
// @Description	Returns a specific credit card with its current bill
// @Tags			Credit Cards
// @Produce		json
// @Success		200	{object}	Response[CreditCard]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the credit card"
// @Router			/v1/credit-cards/{id} [get]
func (co Controller) GetCreditCard(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	card, err := co.store.GetCreditCard(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	s, err := co.store.Load(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(co.newCreditCard(c, s, card)))
}

// @Summary		Update credit card
// @Description	Updates a credit card. Only values to be updated need to be specified.
// @Tags			Credit Cards
// @Produce		json
// @Success		200			{object}	Response[CreditCard]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID					true	"ID of the credit card"
// @Param			creditCard	body		store.CreditCardUpdate	true	"Credit card"
// @Router			/v1/credit-cards/{id} [patch]
func (co Controller) UpdateCreditCard(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var update store.CreditCardUpdate
	if err := httputil.BindData(c, &update); err != nil {
		fail(c, err)
		return
	}

	card, err := co.store.UpdateCreditCard(c.Request.Context(), owners(c), id, update)
	if err != nil {
		fail(c, err)
		return
	}

	s, err := co.store.Load(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(co.newCreditCard(c, s, card)))
}

// @Summary		Delete credit card
// @Description	Deletes a credit card. Transactions on the card are kept without it.
// @Tags			Credit Cards
// @Success		200	{object}	Response[store.Unlinked]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the credit card"
// @Router			/v1/credit-cards/{id} [delete]
func (co Controller) DeleteCreditCard(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	unlinked, err := co.store.DeleteCreditCard(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(unlinked))
}
