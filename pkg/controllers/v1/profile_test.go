package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/test"
	v1 "github.com/household-finance/backend/pkg/controllers/v1"
	"github.com/household-finance/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestProfileLinkedOwner() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Shared"})
	partner := suite.owner

	// Act as a new owner that links to the first one
	suite.owner = uuid.NewString()
	partnerID := uuid.MustParse(partner)

	r := suite.request(http.MethodPut, "http://example.com/v1/profile", v1.ProfileEditable{LinkedOwnerID: &partnerID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var profile v1.Response[models.Profile]
	test.DecodeResponse(suite.T(), &r, &profile)
	suite.Require().NotNil(profile.Data.LinkedOwnerID)
	suite.Assert().Equal(partnerID, *profile.Data.LinkedOwnerID)

	// The partner's resources can be read
	r = suite.request(http.MethodGet, "http://example.com/v1/accounts", "")
	var list v1.ListResponse[v1.Account]
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(account.ID, list.Data[0].ID)

	// but not changed
	r = suite.request(http.MethodPatch, account.Links.Self, map[string]any{"name": "Mine"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, account.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Unlinking hides them again
	r = suite.request(http.MethodPut, "http://example.com/v1/profile", map[string]any{"linkedOwnerId": nil})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/v1/accounts", "")
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)
}

func (suite *TestSuiteStandard) TestProfileLinkedToSelf() {
	owner := uuid.MustParse(suite.owner)

	r := suite.request(http.MethodPut, "http://example.com/v1/profile", v1.ProfileEditable{LinkedOwnerID: &owner})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrProfileLinkedToSelf.Error(), test.DecodeError(suite.T(), &r))
}
