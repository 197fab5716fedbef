package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReceivableStatus string

const (
	ReceivableStatusPending       ReceivableStatus = "pending"
	ReceivableStatusPartiallyPaid ReceivableStatus = "partially_paid"
	ReceivableStatusPaid          ReceivableStatus = "paid"
)

// Receivable is a debt a third party owes the owner.
//
// Status is always derived from Amount and PaidAmount when saving.
type Receivable struct {
	DefaultModel
	OwnerID       uuid.UUID        `json:"ownerId" gorm:"index"`
	ThirdPartyID  uuid.UUID        `json:"thirdPartyId" gorm:"index"`
	ThirdParty    *ThirdParty      `json:"thirdParty,omitempty" gorm:"constraint:OnDelete:CASCADE"` // Only settled receivables remain when a third party can be deleted
	TransactionID *uuid.UUID       `json:"transactionId"`                                           // The expense this receivable originates from. Not a foreign key, neither side cascades.
	Description   string           `json:"description" example:"Concert tickets"`
	Amount        decimal.Decimal  `json:"amount" gorm:"type:DECIMAL(20,8)" example:"120.00"`
	PaidAmount    decimal.Decimal  `json:"paidAmount" gorm:"type:DECIMAL(20,8)" example:"50.00"`
	DueDate       time.Time        `json:"dueDate" gorm:"index" example:"2024-01-10T00:00:00Z"`
	Status        ReceivableStatus `json:"status" example:"partially_paid"`
}

// ReceivableStatusFor returns the status of a receivable with the given amounts.
func ReceivableStatusFor(amount, paid decimal.Decimal) ReceivableStatus {
	switch {
	case paid.GreaterThanOrEqual(amount):
		return ReceivableStatusPaid
	case paid.IsPositive():
		return ReceivableStatusPartiallyPaid
	default:
		return ReceivableStatusPending
	}
}

// BeforeSave validates the amounts and derives the status.
func (r *Receivable) BeforeSave(_ *gorm.DB) error {
	if err := checkOwner(r.OwnerID); err != nil {
		return err
	}

	r.Description = strings.TrimSpace(r.Description)

	if r.TransactionID != nil && *r.TransactionID == uuid.Nil {
		r.TransactionID = nil
	}

	if r.ThirdPartyID == uuid.Nil {
		return ErrThirdPartyRequired
	}

	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if r.PaidAmount.IsNegative() || r.PaidAmount.GreaterThan(r.Amount) {
		return ErrPaidAmountInvalid
	}

	if r.DueDate.IsZero() {
		return ErrDateMissing
	}
	r.DueDate = calendarDate(r.DueDate)

	r.Status = ReceivableStatusFor(r.Amount, r.PaidAmount)
	return nil
}

// AfterFind enforces UTC for the due date.
func (r *Receivable) AfterFind(tx *gorm.DB) error {
	if err := r.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	r.DueDate = r.DueDate.In(time.UTC)
	return nil
}

// Pending returns the amount that has not been paid yet.
func (r Receivable) Pending() decimal.Decimal {
	return r.Amount.Sub(r.PaidAmount)
}

// IsOpen reports if anything is left to pay.
func (r Receivable) IsOpen() bool {
	return r.Status != ReceivableStatusPaid && r.Pending().IsPositive()
}
