package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypePayment  AccountType = "payment"
	AccountTypeOther    AccountType = "other"
)

// Account represents a place that holds money, e.g. a bank account.
//
// The balance is never stored, see ledger.AccountBalance.
type Account struct {
	DefaultModel
	OwnerID            uuid.UUID       `json:"ownerId" gorm:"index"`
	Name               string          `json:"name" example:"Nubank"`
	Bank               string          `json:"bank" example:"Nu Pagamentos S.A."`
	Type               AccountType     `json:"type" example:"checking"`
	InitialBalance     decimal.Decimal `json:"initialBalance" gorm:"type:DECIMAL(20,8)" example:"1500.00"`
	InitialBalanceDate time.Time       `json:"initialBalanceDate" example:"2024-01-01T00:00:00Z"`
	Color              string          `json:"color" example:"#8a05be"`
}

// BeforeSave validates the account and trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	if err := checkOwner(a.OwnerID); err != nil {
		return err
	}

	a.Name = strings.TrimSpace(a.Name)
	a.Bank = strings.TrimSpace(a.Bank)
	a.Color = strings.TrimSpace(a.Color)

	if a.Name == "" {
		return ErrNameEmpty
	}

	if a.Type == "" {
		a.Type = AccountTypeChecking
	}

	switch a.Type {
	case AccountTypeChecking, AccountTypeSavings, AccountTypePayment, AccountTypeOther:
	default:
		return ErrAccountTypeInvalid
	}

	if a.InitialBalanceDate.IsZero() {
		a.InitialBalanceDate = time.Now()
	}
	a.InitialBalanceDate = calendarDate(a.InitialBalanceDate)

	return nil
}

// AfterFind enforces UTC for the initial balance date.
func (a *Account) AfterFind(tx *gorm.DB) error {
	if err := a.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	a.InitialBalanceDate = a.InitialBalanceDate.In(time.UTC)
	return nil
}
