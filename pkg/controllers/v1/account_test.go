package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/household-finance/backend/internal/test"
	v1 "github.com/household-finance/backend/pkg/controllers/v1"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	account := suite.createTestAccount(v1.AccountEditable{Name: " Nubank ", InitialBalance: amount("1500")})

	suite.Assert().Equal("Nubank", account.Name)
	suite.Assert().Equal(models.AccountTypeChecking, account.Type)
	suite.Assert().True(account.Balance.Equal(amount("1500")), "Balance is %s", account.Balance)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/accounts/%s", account.ID), account.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions?account=%s", account.ID), account.Links.Transactions)
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest},
		{"No name", v1.AccountEditable{}, http.StatusBadRequest},
		{"Invalid type", v1.AccountEditable{Name: "Wallet", Type: "bag"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "http://example.com/v1/accounts", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsBalance() {
	account := suite.createTestAccount(v1.AccountEditable{InitialBalance: amount("1000")})

	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIncome, Amount: amount("5000"), AccountID: &account.ID})
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: amount("234.56"), AccountID: &account.ID})

	r := suite.request(http.MethodGet, account.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Account]
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Balance.Equal(amount("5765.44")), "Balance is %s", response.Data.Balance)

	r = suite.request(http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ListResponse[v1.Account]
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().True(list.Data[0].Balance.Equal(amount("5765.44")), "Balance is %s", list.Data[0].Balance)
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	account := suite.createTestAccount(v1.AccountEditable{InitialBalance: amount("10")})

	r := suite.request(http.MethodPatch, account.Links.Self, map[string]any{"name": "Savings", "type": "savings"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Account]
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Savings", response.Data.Name)
	suite.Assert().Equal(models.AccountTypeSavings, response.Data.Type)
	suite.Assert().True(response.Data.InitialBalance.Equal(amount("10")))
}

func (suite *TestSuiteStandard) TestAccountsUpdateInitialBalanceFails() {
	account := suite.createTestAccount(v1.AccountEditable{InitialBalance: amount("10")})

	r := suite.request(http.MethodPatch, account.Links.Self, map[string]any{"initialBalance": "20"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrInitialBalanceChanged.Error(), test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestAccountsDeleteUnlinksTransactions() {
	account := suite.createTestAccount(v1.AccountEditable{})
	added := suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: amount("12"), AccountID: &account.ID})

	r := suite.request(http.MethodDelete, account.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[store.Unlinked]
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(int64(1), response.Data.Transactions)

	r = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", added.Transactions[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transaction v1.Response[models.Transaction]
	test.DecodeResponse(suite.T(), &r, &transaction)
	suite.Assert().Nil(transaction.Data.AccountID)

	r = suite.request(http.MethodGet, account.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsGetInvalidID() {
	tests := []struct {
		id     string
		status int
	}{
		{"not-a-uuid", http.StatusBadRequest},
		{"2d9cbe3a-54a0-4c7c-b4a5-1d7a4d0f1c0e", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.id, func(t *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
