package v1_test

import (
	"fmt"
	"net/http"

	"github.com/household-finance/backend/internal/test"
	v1 "github.com/household-finance/backend/pkg/controllers/v1"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/settlement"
)

func (suite *TestSuiteStandard) createTestReceivable(thirdParty v1.ThirdParty, value string) models.Receivable {
	return create[models.Receivable](suite, "http://example.com/v1/receivables", v1.ReceivableEditable{
		ThirdPartyID: thirdParty.ID,
		Description:  "Borrowed cash",
		Amount:       amount(value),
		DueDate:      date(2024, 1, 15),
	})
}

func (suite *TestSuiteStandard) TestReceivablesCreate() {
	thirdParty := suite.createTestThirdParty("João")
	receivable := suite.createTestReceivable(thirdParty, "80")

	suite.Assert().Equal(models.ReceivableStatusPending, receivable.Status)
	suite.Assert().True(receivable.PaidAmount.IsZero())
	suite.Assert().Nil(receivable.TransactionID)
	suite.Assert().Equal(date(2024, 1, 15), receivable.DueDate)
}

func (suite *TestSuiteStandard) TestReceivablesCreateFails() {
	thirdParty := suite.createTestThirdParty("João")

	tests := []struct {
		name     string
		editable v1.ReceivableEditable
		status   int
	}{
		{"No third party", v1.ReceivableEditable{Description: "Cash", Amount: amount("1"), DueDate: date(2024, 1, 1)}, http.StatusNotFound},
		{"Zero amount", v1.ReceivableEditable{ThirdPartyID: thirdParty.ID, Description: "Cash", DueDate: date(2024, 1, 1)}, http.StatusBadRequest},
		{"No due date", v1.ReceivableEditable{ThirdPartyID: thirdParty.ID, Description: "Cash", Amount: amount("1")}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/receivables", tt.editable)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestReceivablesUpdate() {
	thirdParty := suite.createTestThirdParty("João")
	receivable := suite.createTestReceivable(thirdParty, "80")
	url := fmt.Sprintf("http://example.com/v1/receivables/%s", receivable.ID)

	r := suite.request(http.MethodPatch, url, map[string]any{"description": "Borrowed cash for the bus", "amount": "90"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[models.Receivable]
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Borrowed cash for the bus", response.Data.Description)
	suite.Assert().True(response.Data.Amount.Equal(amount("90")))
}

func (suite *TestSuiteStandard) TestReceivablesPayments() {
	account := suite.createTestAccount(v1.AccountEditable{})
	thirdParty := suite.createTestThirdParty("João")
	receivable := suite.createTestReceivable(thirdParty, "80")
	url := fmt.Sprintf("http://example.com/v1/receivables/%s/payments", receivable.ID)

	r := suite.request(http.MethodPost, url, v1.Payment{Amount: amount("30"), DestinationAccountID: account.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var result v1.Response[settlement.PaymentResult]
	test.DecodeResponse(suite.T(), &r, &result)
	suite.Assert().Equal(models.ReceivableStatusPartiallyPaid, result.Data.Receivable.Status)
	suite.Assert().True(result.Data.Receivable.PaidAmount.Equal(amount("30")))
	suite.Assert().True(result.Data.Transaction.Amount.Equal(amount("30")))
	suite.Assert().Equal(models.TransactionTypeIncome, result.Data.Transaction.Type)

	// The amount cannot be lowered below what has been paid
	r = suite.request(http.MethodPatch, fmt.Sprintf("http://example.com/v1/receivables/%s", receivable.ID), map[string]any{"amount": "20"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	tests := []struct {
		name    string
		payment v1.Payment
		status  int
	}{
		{"Overpayment", v1.Payment{Amount: amount("50.01"), DestinationAccountID: account.ID}, http.StatusBadRequest},
		{"Zero", v1.Payment{DestinationAccountID: account.ID}, http.StatusBadRequest},
		{"No destination", v1.Payment{Amount: amount("10")}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, url, tt.payment)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	r = suite.request(http.MethodPost, url, v1.Payment{Amount: amount("50"), DestinationAccountID: account.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &result)
	suite.Assert().Equal(models.ReceivableStatusPaid, result.Data.Receivable.Status)

	r = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", account.ID), "")
	var balance v1.Response[v1.Account]
	test.DecodeResponse(suite.T(), &r, &balance)
	suite.Assert().True(balance.Data.Balance.Equal(amount("80")), "Balance is %s", balance.Data.Balance)
}

func (suite *TestSuiteStandard) TestReceivablesPaymentNotFound() {
	account := suite.createTestAccount(v1.AccountEditable{})

	r := suite.request(http.MethodPost, "http://example.com/v1/receivables/2d9cbe3a-54a0-4c7c-b4a5-1d7a4d0f1c0e/payments", v1.Payment{Amount: amount("1"), DestinationAccountID: account.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestReceivablesDelete() {
	thirdParty := suite.createTestThirdParty("João")
	receivable := suite.createTestReceivable(thirdParty, "80")
	url := fmt.Sprintf("http://example.com/v1/receivables/%s", receivable.ID)

	r := suite.request(http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
