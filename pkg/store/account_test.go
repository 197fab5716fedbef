package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountCreateStampsOwner() {
	other := uuid.New()
	account := suite.createTestAccount(suite.owners, models.Account{OwnerID: other, Name: "  Savings  ", Type: models.AccountTypeSavings})

	suite.Assert().Equal(suite.owners.Owner, account.OwnerID)
	suite.Assert().Equal("Savings", account.Name)
	suite.Assert().NotEqual(uuid.Nil, account.ID)
}

func (suite *TestSuiteStandard) TestAccountInitialBalanceImmutable() {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	account := suite.createTestAccount(suite.owners, models.Account{
		InitialBalance:     decimal.NewFromInt(1000),
		InitialBalanceDate: date,
	})

	tests := []struct {
		name   string
		update store.AccountUpdate
		err    error
	}{
		{"Same balance", store.AccountUpdate{InitialBalance: ptr(decimal.NewFromFloat(1000.00))}, nil},
		{"Same date", store.AccountUpdate{InitialBalanceDate: ptr(date.Add(5 * time.Hour))}, nil},
		{"Other balance", store.AccountUpdate{InitialBalance: ptr(decimal.NewFromInt(1200))}, models.ErrInitialBalanceChanged},
		{"Other date", store.AccountUpdate{InitialBalanceDate: ptr(date.AddDate(0, 0, 1))}, models.ErrInitialBalanceChanged},
		{"Rename", store.AccountUpdate{Name: ptr("Renamed")}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.store.UpdateAccount(suite.ctx, suite.owners, account.ID, tt.update)
			if tt.err == nil {
				assert.Nil(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	stored, err := suite.store.GetAccount(suite.ctx, suite.owners, account.ID)
	suite.Require().Nil(err)
	suite.Assert().True(stored.InitialBalance.Equal(decimal.NewFromInt(1000)))
	suite.Assert().Equal(date, stored.InitialBalanceDate)
	suite.Assert().Equal("Renamed", stored.Name)
}

func (suite *TestSuiteStandard) TestAccountInvalidType() {
	account := suite.createTestAccount(suite.owners, models.Account{})

	_, err := suite.store.UpdateAccount(suite.ctx, suite.owners, account.ID, store.AccountUpdate{Type: ptr(models.AccountType("brokerage"))})
	suite.Assert().ErrorIs(err, models.ErrAccountTypeInvalid)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestAccountDeleteUnlinksTransactions() {
	account := suite.createTestAccount(suite.owners, models.Account{})
	other := suite.createTestAccount(suite.owners, models.Account{Name: "Other"})

	suite.createTestTransaction(suite.owners, models.Transaction{AccountID: &account.ID})
	suite.createTestTransaction(suite.owners, models.Transaction{AccountID: &account.ID, Type: models.TransactionTypeIncome})
	kept := suite.createTestTransaction(suite.owners, models.Transaction{AccountID: &other.ID})

	unlinked, err := suite.store.DeleteAccount(suite.ctx, suite.owners, account.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), unlinked.Transactions)

	transactions, err := suite.store.ListTransactions(suite.ctx, suite.owners, store.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 3, "Transactions must not be deleted with their account")

	for _, transaction := range transactions {
		if transaction.ID == kept.ID {
			suite.Assert().Equal(other.ID, *transaction.AccountID)
			continue
		}
		suite.Assert().Nil(transaction.AccountID)
	}

	_, err = suite.store.GetAccount(suite.ctx, suite.owners, account.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCreditCardDeleteUnlinksTransactions() {
	card := suite.createTestCreditCard(suite.owners, models.CreditCard{})
	suite.createTestTransaction(suite.owners, models.Transaction{CreditCardID: &card.ID})

	unlinked, err := suite.store.DeleteCreditCard(suite.ctx, suite.owners, card.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), unlinked.Transactions)

	transactions, err := suite.store.ListTransactions(suite.ctx, suite.owners, store.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Nil(transactions[0].CreditCardID)
}

func (suite *TestSuiteStandard) TestCreditCardUpdate() {
	card := suite.createTestCreditCard(suite.owners, models.CreditCard{})

	tests := []struct {
		name   string
		update store.CreditCardUpdate
		err    error
	}{
		{"Closing day too high", store.CreditCardUpdate{ClosingDay: ptr(32)}, models.ErrDayOfMonthInvalid},
		{"Due day zero", store.CreditCardUpdate{DueDay: ptr(0)}, models.ErrDayOfMonthInvalid},
		{"Negative limit", store.CreditCardUpdate{Limit: ptr(decimal.NewNullDecimal(decimal.NewFromInt(-1)))}, models.ErrLimitNotPositive},
		{"Unknown brand", store.CreditCardUpdate{Brand: ptr(models.CardBrand("diners"))}, models.ErrCardBrandInvalid},
		{"Valid", store.CreditCardUpdate{ClosingDay: ptr(31), Limit: ptr(decimal.NewNullDecimal(decimal.NewFromInt(5000))), Brand: ptr(models.CardBrandElo)}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.store.UpdateCreditCard(suite.ctx, suite.owners, card.ID, tt.update)
			if tt.err == nil {
				assert.Nil(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	stored, err := suite.store.GetCreditCard(suite.ctx, suite.owners, card.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(31, stored.ClosingDay)
	suite.Assert().Equal(models.CardBrandElo, stored.Brand)
	suite.Assert().True(stored.Limit.Valid)
}

func ptr[T any](v T) *T {
	return &v
}
