package v1_test

import (
	"net/http"

	"github.com/household-finance/backend/internal/test"
	v1 "github.com/household-finance/backend/pkg/controllers/v1"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/reports"
)

func (suite *TestSuiteStandard) TestMonthsDashboard() {
	account := suite.createTestAccount(v1.AccountEditable{InitialBalance: amount("1000")})
	thirdParty := suite.createTestThirdParty("Maria")
	food := suite.createTestCategory("Food")

	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIncome, Amount: amount("5000"), Date: date(2024, 1, 5), AccountID: &account.ID})
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: amount("234.56"), Date: date(2024, 1, 10), AccountID: &account.ID, CategoryID: &food.ID})
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: amount("120"), Date: date(2024, 1, 12), AccountID: &account.ID, Responsible: models.ResponsibleThirdParty, ThirdPartyID: &thirdParty.ID})
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: amount("99"), Date: date(2024, 2, 1), AccountID: &account.ID})
	suite.createTestScheduledIncome(v1.ScheduledIncomeEditable{Amount: amount("5400"), ExpectedDate: date(2024, 1, 30)})

	r := suite.request(http.MethodGet, "http://example.com/v1/months/2024-01/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[reports.Overview]
	test.DecodeResponse(suite.T(), &r, &response)
	overview := response.Data

	suite.Assert().Equal("2024-01", overview.Summary.Month.String())
	suite.Assert().True(overview.Summary.Income.Equal(amount("5000")), "Income is %s", overview.Summary.Income)
	suite.Assert().True(overview.Summary.Expenses.Equal(amount("234.56")), "Expenses are %s", overview.Summary.Expenses)
	suite.Assert().True(overview.Summary.Balance.Equal(amount("4765.44")), "Balance is %s", overview.Summary.Balance)
	suite.Assert().True(overview.Summary.ReceivablesTotal.Equal(amount("120")), "Receivables total is %s", overview.Summary.ReceivablesTotal)

	suite.Assert().Equal(reports.Display{
		Income:           "R$ 5.000,00",
		Expenses:         "R$ 234,56",
		Balance:          "R$ 4.765,44",
		ReceivablesTotal: "R$ 120,00",
	}, overview.Display)

	suite.Require().Len(overview.Accounts, 1)
	suite.Assert().True(overview.Accounts[0].Balance.Equal(amount("5546.44")), "Account balance is %s", overview.Accounts[0].Balance)

	suite.Require().Len(overview.TopCategories, 1)
	suite.Assert().Equal("Food", overview.TopCategories[0].Name)
	suite.Assert().True(overview.TopCategories[0].Total.Equal(amount("234.56")))

	suite.Assert().Len(overview.RecentTransactions, 3, "Only transactions of the month are listed")

	suite.Assert().True(overview.Receivables.ThirdPartyDebts.Equal(amount("120")), "Debts are %s", overview.Receivables.ThirdPartyDebts)
	suite.Assert().True(overview.Receivables.ScheduledIncomes.Equal(amount("5400")), "Scheduled incomes are %s", overview.Receivables.ScheduledIncomes)
	suite.Assert().True(overview.Receivables.Total.Equal(amount("5520")), "Total is %s", overview.Receivables.Total)
}

func (suite *TestSuiteStandard) TestMonthsDashboardEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/v1/months/2024-01/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[reports.Overview]
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Summary.Income.IsZero())
	suite.Assert().Equal("R$ 0,00", response.Data.Display.Balance)
}

func (suite *TestSuiteStandard) TestMonthsDashboardInvalidMonth() {
	for _, month := range []string{"2024-13", "January", "2024"} {
		suite.Run(month, func() {
			r := suite.request(http.MethodGet, "http://example.com/v1/months/"+month+"/dashboard", "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}
