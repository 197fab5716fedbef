package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/settlement"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
)

type ThirdPartyEditable struct {
	Name         string `json:"name" example:"Maria"`                                   // Name of the third party, unique per owner ignoring case
	Relationship string `json:"relationship" example:"sister"`                          // How the third party is related to the owner
	Avatar       string `json:"avatar" example:"https://example.com/avatars/maria.png"` // URL of an avatar image
}

func (editable ThirdPartyEditable) model() models.ThirdParty {
	return models.ThirdParty{
		Name:         editable.Name,
		Relationship: editable.Relationship,
		Avatar:       editable.Avatar,
	}
}

type ThirdPartyLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/third-parties/5a1f9b2e-8c3d-4e6f-9a0b-1c2d3e4f5a6b"`              // The third party itself
	Payments string `json:"payments" example:"https://example.com/api/v1/third-parties/5a1f9b2e-8c3d-4e6f-9a0b-1c2d3e4f5a6b/payments"` // Endpoint to settle debts of the third party
}

// ThirdParty is a third party with what it owes.
type ThirdParty struct {
	models.ThirdParty
	Balance decimal.Decimal `json:"balance" example:"170.00"` // Sum of what is pending on all receivables
	Links   ThirdPartyLinks `json:"links"`
}

func newThirdParty(c *gin.Context, s store.Snapshot, model models.ThirdParty) ThirdParty {
	url := c.GetString(string(models.DBContextURL))

	return ThirdParty{
		ThirdParty: model,
		Balance:    settlement.ThirdPartyBalance(s, model.ID),
		Links: ThirdPartyLinks{
			Self:     fmt.Sprintf("%s/v1/third-parties/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/third-parties/%s/payments", url, model.ID),
		},
	}
}

// Payment is money received from a third party.
type Payment struct {
	Amount               decimal.Decimal `json:"amount" example:"60.00"`                                              // Amount received
	DestinationAccountID uuid.UUID       `json:"destinationAccountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Account the money was received on
}

// thirdPartySnapshot returns a Snapshot with all receivables of the third party.
func (co Controller) thirdPartySnapshot(ctx context.Context, thirdPartyID uuid.UUID) (store.Snapshot, error) {
	receivables, err := co.store.ThirdPartyReceivables(ctx, thirdPartyID)
	if err != nil {
		return store.Snapshot{}, err
	}

	var s store.Snapshot
	for _, r := range receivables {
		s = s.Apply(r)
	}

	return s, nil
}

// RegisterThirdPartyRoutes registers the routes for third parties with
// the RouterGroup that is passed.
func (co Controller) RegisterThirdPartyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsThirdPartyList)
		r.GET("", co.GetThirdParties)
		r.POST("", co.CreateThirdParty)
	}

	// Third party with ID
	{
		r.OPTIONS("/:id", co.OptionsThirdPartyDetail)
		r.GET("/:id", co.GetThirdParty)
		r.PATCH("/:id", co.UpdateThirdParty)
		r.DELETE("/:id", co.DeleteThirdParty)
		r.OPTIONS("/:id/payments", OptionsThirdPartyPayments)
		r.POST("/:id/payments", co.SettleThirdPartyDebts)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Third Parties
// @Success		204
// @Router			/v1/third-parties [options]
func OptionsThirdPartyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Third Parties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the third party"
// @Router			/v1/third-parties/{id} [options]
func (co Controller) OptionsThirdPartyDetail(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.store.GetThirdParty(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Third Parties
// @Success		204
// @Param			id	path	URIID	true	"ID of the third party"
// @Router			/v1/third-parties/{id}/payments [options]
func OptionsThirdPartyPayments(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List third parties
// @Description	Returns all third parties with their balance
// @Tags			Third Parties
// @Produce		json
// @Success		200	{object}	ListResponse[ThirdParty]
// @Failure		500	{object}	httpError
// @Router			/v1/third-parties [get]
func (co Controller) GetThirdParties(c *gin.Context) {
	s, err := co.store.Load(c.Request.Context(), owners(c))
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]ThirdParty, 0, len(s.ThirdParties))
	for _, thirdParty := range s.ThirdParties {
		data = append(data, newThirdParty(c, s, thirdParty))
	}

	c.JSON(http.StatusOK, newListResponse(data))
}

// @Summary		Create third party
// @Description	Creates a new third party
// @Tags			Third Parties
// @Produce		json
// @Success		201			{object}	Response[ThirdParty]
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			thirdParty	body		ThirdPartyEditable	true	"Third party"
// @Router			/v1/third-parties [post]
func (co Controller) CreateThirdParty(c *gin.Context) {
	var editable ThirdPartyEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	thirdParty, err := co.store.CreateThirdParty(c.Request.Context(), owners(c), editable.model())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newResponse(newThirdParty(c, store.Snapshot{}, thirdParty)))
}

// @Summary		Get third party
// @Description	Returns a specific third party with its balance
// @Tags			Third Parties
// @Produce		json
// @Success		200	{object}	Response[ThirdParty]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the third party"
// @Router			/v1/third-parties/{id} [get]
func (co Controller) GetThirdParty(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	thirdParty, err := co.store.GetThirdParty(c.Request.Context(), owners(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	s, err := co.thirdPartySnapshot(c.Request.Context(), thirdParty.ID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(newThirdParty(c, s, thirdParty)))
}

// @Summary		Update third party
// @Description	Updates a third party. Only values to be updated need to be specified.
// @Tags			Third Parties
// @Produce		json
// @Success		200			{object}	Response[ThirdParty]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID					true	"ID of the third party"
// @Param			thirdParty	body		store.ThirdPartyUpdate	true	"Third party"
// @Router			/v1/third-parties/{id} [patch]
func (co Controller) UpdateThirdParty(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var update store.ThirdPartyUpdate
	if err := httputil.BindData(c, &update); err != nil {
		fail(c, err)
		return
	}

	thirdParty, err := co.store.UpdateThirdParty(c.Request.Context(), owners(c), id, update)
	if err != nil {
		fail(c, err)
		return
	}

	s, err := co.thirdPartySnapshot(c.Request.Context(), thirdParty.ID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(newThirdParty(c, s, thirdParty)))
}

// @Summary		Delete third party
// @Description	Deletes a third party together with its settled receivables.
// @Description	Third parties that still owe money cannot be deleted.
// @Tags			Third Parties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the third party"
// @Router			/v1/third-parties/{id} [delete]
func (co Controller) DeleteThirdParty(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.engine.DeleteThirdParty(c.Request.Context(), owners(c), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Settle debts
// @Description	Applies a payment from the third party to its open receivables, oldest first
// @Tags			Third Parties
// @Produce		json
// @Success		201		{object}	ListResponse[settlement.PaymentResult]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ID of the third party"
// @Param			payment	body		Payment	true	"Payment"
// @Router			/v1/third-parties/{id}/payments [post]
func (co Controller) SettleThirdPartyDebts(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var payment Payment
	if err := httputil.BindData(c, &payment); err != nil {
		fail(c, err)
		return
	}

	results, err := co.engine.SettleAcrossDebts(c.Request.Context(), owners(c), id, payment.Amount, payment.DestinationAccountID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newListResponse(results))
}
