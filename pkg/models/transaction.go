package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Responsible is the party a transaction is attributed to. For expenses
// this is who the money was spent for, for income who received it.
type Responsible string

const (
	ResponsibleSelf       Responsible = "self"
	ResponsiblePartner    Responsible = "partner"
	ResponsibleThirdParty Responsible = "third_party"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPaid      TransactionStatus = "paid"
)

// Transaction is a single movement of money.
//
// Account and CreditCard references are cleared, not cascaded, when the
// referenced resource is deleted.
type Transaction struct {
	DefaultModel
	OwnerID     uuid.UUID         `json:"ownerId" gorm:"index"`
	Type        TransactionType   `json:"type" example:"expense"`
	Description string            `json:"description" example:"Supermarket"`
	Amount      decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"152.37"`
	Date        time.Time         `json:"date" gorm:"index" example:"2024-01-21T00:00:00Z"`
	DueDate     *time.Time        `json:"dueDate" example:"2024-02-05T00:00:00Z"`
	Responsible Responsible       `json:"responsible" example:"self"`
	Status      TransactionStatus `json:"status" example:"completed"`

	AccountID    *uuid.UUID  `json:"accountId" gorm:"index"`
	Account      *Account    `json:"account,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	CreditCardID *uuid.UUID  `json:"creditCardId" gorm:"index"`
	CreditCard   *CreditCard `json:"creditCard,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	CategoryID   *uuid.UUID  `json:"categoryId" gorm:"index"`
	Category     *Category   `json:"category,omitempty"`
	ThirdPartyID *uuid.UUID  `json:"thirdPartyId" gorm:"index"`
	ThirdParty   *ThirdParty `json:"thirdParty,omitempty" gorm:"constraint:OnDelete:SET NULL"`

	CurrentInstallment  int        `json:"currentInstallment" example:"1"` // 0 for transactions that are not installments
	TotalInstallments   int        `json:"totalInstallments" example:"10"`
	ParentTransactionID *uuid.UUID `json:"parentTransactionId"` // The first installment of the purchase
}

// BeforeSave
//   - sets defaults for responsible party and status
//   - normalises dates to calendar days in UTC
//   - ensures that optional references are nil and not pointers to the nil UUID
//   - validates the transaction
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if err := checkOwner(t.OwnerID); err != nil {
		return err
	}

	t.Description = strings.TrimSpace(t.Description)

	for _, ref := range []**uuid.UUID{&t.AccountID, &t.CreditCardID, &t.CategoryID, &t.ThirdPartyID, &t.ParentTransactionID} {
		if *ref != nil && **ref == uuid.Nil {
			*ref = nil
		}
	}

	if t.Responsible == "" {
		t.Responsible = ResponsibleSelf
	}

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}
	t.Date = calendarDate(t.Date)

	if t.DueDate != nil {
		d := calendarDate(*t.DueDate)
		t.DueDate = &d
	}

	return t.validate()
}

func (t Transaction) validate() error {
	switch t.Type {
	case TransactionTypeIncome, TransactionTypeExpense:
	default:
		return ErrTransactionTypeInvalid
	}

	switch t.Status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusPaid:
	default:
		return ErrTransactionStatusInvalid
	}

	switch t.Responsible {
	case ResponsibleSelf, ResponsiblePartner, ResponsibleThirdParty:
	default:
		return ErrResponsibleInvalid
	}

	if t.Description == "" {
		return ErrDescriptionEmpty
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.AccountID != nil && t.CreditCardID != nil {
		return ErrAccountAndCardSet
	}

	if t.TotalInstallments != 0 || t.CurrentInstallment != 0 {
		if t.CurrentInstallment < 1 || t.CurrentInstallment > t.TotalInstallments {
			return ErrInstallmentsInvalid
		}
	}

	return nil
}

// BeforeCreate verifies that expenses for third parties reference the third party.
//
// This is only checked on creation since the reference is cleared when
// the third party is deleted.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.Type == TransactionTypeExpense && t.Responsible == ResponsibleThirdParty && (t.ThirdPartyID == nil || *t.ThirdPartyID == uuid.Nil) {
		return ErrThirdPartyRequired
	}

	return nil
}

// AfterFind enforces UTC for all dates.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	if err := t.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	if t.DueDate != nil {
		d := t.DueDate.In(time.UTC)
		t.DueDate = &d
	}

	return nil
}

// IsIncome reports if the transaction is an income transaction.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports if the transaction is an expense transaction.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
