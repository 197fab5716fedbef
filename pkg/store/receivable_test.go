package store_test

import (
	"time"

	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
)

func decimalFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *TestSuiteStandard) createTestReceivable(thirdParty models.ThirdParty, amount string, due time.Time) models.Receivable {
	receivable, err := suite.store.CreateReceivable(suite.ctx, suite.owners, models.Receivable{
		ThirdPartyID: thirdParty.ID,
		Description:  "Dinner",
		Amount:       decimalFromString(amount),
		DueDate:      due,
	})
	suite.Require().Nil(err)
	return receivable
}

func (suite *TestSuiteStandard) TestReceivableCreate() {
	maria := suite.createTestThirdParty(suite.owners, "Maria")

	receivable, err := suite.store.CreateReceivable(suite.ctx, suite.owners, models.Receivable{
		ThirdPartyID: maria.ID,
		Description:  "Dinner",
		Amount:       decimalFromString("100"),
		PaidAmount:   decimalFromString("100"),
		DueDate:      time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC),
	})
	suite.Require().Nil(err)

	suite.Assert().True(receivable.PaidAmount.IsZero(), "Receivables must start unpaid")
	suite.Assert().Equal(models.ReceivableStatusPending, receivable.Status)
	suite.Assert().Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), receivable.DueDate)
	suite.Require().NotNil(receivable.ThirdParty)
	suite.Assert().Equal("Maria", receivable.ThirdParty.Name)
}

func (suite *TestSuiteStandard) TestReceivableStatusDerived() {
	maria := suite.createTestThirdParty(suite.owners, "Maria")
	receivable := suite.createTestReceivable(maria, "100", time.Now())

	tests := []struct {
		paid   string
		status models.ReceivableStatus
	}{
		{"0", models.ReceivableStatusPending},
		{"0.01", models.ReceivableStatusPartiallyPaid},
		{"99.99", models.ReceivableStatusPartiallyPaid},
		{"100", models.ReceivableStatusPaid},
	}

	for _, tt := range tests {
		receivable.PaidAmount = decimalFromString(tt.paid)
		receivable.Status = models.ReceivableStatusPaid // Ignored

		saved, err := suite.store.SaveReceivable(suite.ctx, suite.owners, receivable)
		suite.Require().Nil(err, tt.paid)
		suite.Assert().Equal(tt.status, saved.Status, tt.paid)

		stored, err := suite.store.GetReceivable(suite.ctx, suite.owners, receivable.ID)
		suite.Require().Nil(err)
		suite.Assert().Equal(tt.status, stored.Status, tt.paid)
		receivable = stored
	}
}

func (suite *TestSuiteStandard) TestReceivablePaidAmountMonotonic() {
	maria := suite.createTestThirdParty(suite.owners, "Maria")
	receivable := suite.createTestReceivable(maria, "100", time.Now())

	receivable.PaidAmount = decimalFromString("40")
	receivable, err := suite.store.SaveReceivable(suite.ctx, suite.owners, receivable)
	suite.Require().Nil(err)

	receivable.PaidAmount = decimalFromString("30")
	_, err = suite.store.SaveReceivable(suite.ctx, suite.owners, receivable)
	suite.Assert().ErrorIs(err, models.ErrPaidAmountInvalid)

	receivable.PaidAmount = decimalFromString("100.01")
	_, err = suite.store.SaveReceivable(suite.ctx, suite.owners, receivable)
	suite.Assert().ErrorIs(err, models.ErrPaidAmountInvalid)

	stored, err := suite.store.GetReceivable(suite.ctx, suite.owners, receivable.ID)
	suite.Require().Nil(err)
	suite.Assert().True(stored.PaidAmount.Equal(decimalFromString("40")))
}

func (suite *TestSuiteStandard) TestReceivableUpdateAmountBelowPaid() {
	maria := suite.createTestThirdParty(suite.owners, "Maria")
	receivable := suite.createTestReceivable(maria, "100", time.Now())

	receivable.PaidAmount = decimalFromString("60")
	_, err := suite.store.SaveReceivable(suite.ctx, suite.owners, receivable)
	suite.Require().Nil(err)

	_, err = suite.store.UpdateReceivable(suite.ctx, suite.owners, receivable.ID, store.ReceivableUpdate{Amount: ptr(decimalFromString("50"))})
	suite.Assert().ErrorIs(err, models.ErrReceivableAmountBelowPaid)

	updated, err := suite.store.UpdateReceivable(suite.ctx, suite.owners, receivable.ID, store.ReceivableUpdate{Amount: ptr(decimalFromString("60"))})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.ReceivableStatusPaid, updated.Status)
}

func (suite *TestSuiteStandard) TestThirdPartyDeleteRemovesReceivables() {
	maria := suite.createTestThirdParty(suite.owners, "Maria")
	receivable := suite.createTestReceivable(maria, "10", time.Now())
	transaction := suite.createTestTransaction(suite.owners, models.Transaction{Responsible: models.ResponsibleThirdParty, ThirdPartyID: &maria.ID})

	err := suite.store.DeleteThirdParty(suite.ctx, suite.owners, maria.ID)
	suite.Require().Nil(err)

	_, err = suite.store.GetReceivable(suite.ctx, suite.owners, receivable.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	stored, err := suite.store.GetTransaction(suite.ctx, suite.owners, transaction.ID)
	suite.Require().Nil(err, "Transactions must be kept")
	suite.Assert().Nil(stored.ThirdPartyID)
}

func (suite *TestSuiteStandard) TestScheduledIncomeReceivedIsFinal() {
	income, err := suite.store.CreateScheduledIncome(suite.ctx, suite.owners, models.ScheduledIncome{
		Description:  "Salary",
		Amount:       decimalFromString("5400"),
		ExpectedDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		Status:       models.ScheduledIncomeStatusReceived,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.ScheduledIncomeStatusPending, income.Status)

	updated, err := suite.store.UpdateScheduledIncome(suite.ctx, suite.owners, income.ID, store.ScheduledIncomeUpdate{Amount: ptr(decimalFromString("5500"))})
	suite.Require().Nil(err)
	suite.Assert().True(updated.Amount.Equal(decimalFromString("5500")))

	updated.Status = models.ScheduledIncomeStatusReceived
	_, err = suite.store.SaveScheduledIncome(suite.ctx, suite.owners, updated)
	suite.Require().Nil(err)

	_, err = suite.store.UpdateScheduledIncome(suite.ctx, suite.owners, income.ID, store.ScheduledIncomeUpdate{Notes: ptr("late")})
	suite.Assert().ErrorIs(err, models.ErrScheduledIncomeAlreadyReceived)

	_, err = suite.store.SaveScheduledIncome(suite.ctx, suite.owners, updated)
	suite.Assert().ErrorIs(err, models.ErrConflict)
}
