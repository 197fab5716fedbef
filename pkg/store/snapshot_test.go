package store_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
)

func (suite *TestSuiteStandard) TestLoad() {
	account := suite.createTestAccount(suite.owners, models.Account{})
	card := suite.createTestCreditCard(suite.owners, models.CreditCard{})
	maria := suite.createTestThirdParty(suite.owners, "Maria")
	suite.createTestReceivable(maria, "10", time.Now())
	suite.createTestTransaction(suite.owners, models.Transaction{AccountID: &account.ID})

	// Not in scope
	suite.createTestAccount(store.Owners{Owner: uuid.New()}, models.Account{})

	snapshot, err := suite.store.Load(suite.ctx, suite.owners)
	suite.Require().Nil(err)

	suite.Assert().Len(snapshot.Accounts, 1)
	suite.Assert().Len(snapshot.CreditCards, 1)
	suite.Assert().Len(snapshot.ThirdParties, 1)
	suite.Assert().Len(snapshot.Receivables, 1)
	suite.Assert().Len(snapshot.Transactions, 1)
	suite.Assert().Len(snapshot.Categories, 0)
	suite.Assert().Len(snapshot.ScheduledIncomes, 0)

	_, ok := snapshot.CreditCard(card.ID)
	suite.Assert().True(ok)

	_, ok = snapshot.Account(uuid.New())
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestSnapshotApply() {
	maria := suite.createTestThirdParty(suite.owners, "Maria")
	receivable := suite.createTestReceivable(maria, "100", time.Now())

	before, err := suite.store.Load(suite.ctx, suite.owners)
	suite.Require().Nil(err)

	receivable.PaidAmount = decimalFromString("25")
	receivable, err = suite.store.SaveReceivable(suite.ctx, suite.owners, receivable)
	suite.Require().Nil(err)

	income := models.Transaction{DefaultModel: models.DefaultModel{ID: uuid.New()}, Type: models.TransactionTypeIncome}
	after := before.Apply(receivable, income, "ignored")

	got, ok := after.Receivable(receivable.ID)
	suite.Require().True(ok)
	suite.Assert().True(got.PaidAmount.Equal(decimalFromString("25")))
	suite.Assert().Len(after.Receivables, 1)
	suite.Assert().Len(after.Transactions, 1)

	// The original snapshot is unchanged
	old, _ := before.Receivable(receivable.ID)
	suite.Assert().True(old.PaidAmount.IsZero())
	suite.Assert().Len(before.Transactions, 0)
}
