package store_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
)

func (suite *TestSuiteStandard) TestTransactionReferencesMustExist() {
	missing := uuid.New()

	_, err := suite.store.CreateTransaction(suite.ctx, suite.owners, models.Transaction{
		Type:        models.TransactionTypeExpense,
		Description: "Coffee",
		Amount:      decimalFromString("4.50"),
		Date:        time.Now(),
		AccountID:   &missing,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "account")
}

func (suite *TestSuiteStandard) TestTransactionThirdPartyRequired() {
	_, err := suite.store.CreateTransaction(suite.ctx, suite.owners, models.Transaction{
		Type:        models.TransactionTypeExpense,
		Description: "Concert tickets",
		Amount:      decimalFromString("120"),
		Date:        time.Now(),
		Responsible: models.ResponsibleThirdParty,
	})
	suite.Assert().ErrorIs(err, models.ErrThirdPartyRequired)
}

func (suite *TestSuiteStandard) TestTransactionUpdateStatusAndCategory() {
	category, err := suite.store.CreateCategory(suite.ctx, suite.owners, models.Category{Name: "Leisure"})
	suite.Require().Nil(err)

	transaction := suite.createTestTransaction(suite.owners, models.Transaction{Status: models.TransactionStatusPending})

	status := models.TransactionStatusPaid
	updated, err := suite.store.UpdateTransaction(suite.ctx, suite.owners, transaction.ID, store.TransactionUpdate{
		Status:     &status,
		CategoryID: &category.ID,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.TransactionStatusPaid, updated.Status)
	suite.Assert().Equal(category.ID, *updated.CategoryID)
	suite.Assert().True(updated.Amount.Equal(transaction.Amount))

	invalid := models.TransactionStatus("refunded")
	_, err = suite.store.UpdateTransaction(suite.ctx, suite.owners, transaction.ID, store.TransactionUpdate{Status: &invalid})
	suite.Assert().ErrorIs(err, models.ErrTransactionStatusInvalid)

	missing := uuid.New()
	_, err = suite.store.UpdateTransaction(suite.ctx, suite.owners, transaction.ID, store.TransactionUpdate{CategoryID: &missing})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionListByMonth() {
	suite.createTestTransaction(suite.owners, models.Transaction{Description: "December", Date: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)})
	suite.createTestTransaction(suite.owners, models.Transaction{Description: "Early January", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	suite.createTestTransaction(suite.owners, models.Transaction{Description: "Late January", Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)})
	suite.createTestTransaction(suite.owners, models.Transaction{Description: "February", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})

	transactions, err := suite.store.ListTransactions(suite.ctx, suite.owners, store.TransactionFilter{Month: types.NewMonth(2024, time.January)})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal("Late January", transactions[0].Description)
	suite.Assert().Equal("Early January", transactions[1].Description)
}

func (suite *TestSuiteStandard) TestTransactionListPreloadsReferences() {
	account := suite.createTestAccount(suite.owners, models.Account{Name: "Wallet"})
	suite.createTestTransaction(suite.owners, models.Transaction{AccountID: &account.ID})

	transactions, err := suite.store.ListTransactions(suite.ctx, suite.owners, store.TransactionFilter{AccountID: &account.ID})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Require().NotNil(transactions[0].Account)
	suite.Assert().Equal("Wallet", transactions[0].Account.Name)
}

func (suite *TestSuiteStandard) TestTransactionDeleteKeepsReceivables() {
	maria := suite.createTestThirdParty(suite.owners, "Maria")
	transaction := suite.createTestTransaction(suite.owners, models.Transaction{
		Responsible:  models.ResponsibleThirdParty,
		ThirdPartyID: &maria.ID,
	})

	receivable, err := suite.store.CreateReceivable(suite.ctx, suite.owners, models.Receivable{
		ThirdPartyID:  maria.ID,
		TransactionID: &transaction.ID,
		Description:   transaction.Description,
		Amount:        transaction.Amount,
		DueDate:       transaction.Date,
	})
	suite.Require().Nil(err)

	err = suite.store.DeleteTransaction(suite.ctx, suite.owners, transaction.ID)
	suite.Require().Nil(err)

	stored, err := suite.store.GetReceivable(suite.ctx, suite.owners, receivable.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(transaction.ID, *stored.TransactionID)
}
