package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error classes. Every error returned by this module for a rejected
// operation wraps exactly one of them, use errors.Is to check.
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("the request is invalid")
	ErrConflict         = errors.New("the operation conflicts with existing data")
)

// classError is an error with a user facing message that belongs to
// one of the error classes.
type classError struct {
	class error
	msg   string
}

func (e *classError) Error() string {
	return e.msg
}

func (e *classError) Unwrap() error {
	return e.class
}

func validationError(msg string) error {
	return &classError{class: ErrValidation, msg: msg}
}

func conflictError(msg string) error {
	return &classError{class: ErrConflict, msg: msg}
}

// Validationf returns a validation error with a formatted message.
func Validationf(format string, args ...any) error {
	return validationError(fmt.Sprintf(format, args...))
}

// NotFoundf returns an error wrapping ErrResourceNotFound.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w %s", ErrResourceNotFound, fmt.Sprintf(format, args...))
}

var (
	ErrOwnerMissing          = validationError("the owner of the resource must be set")
	ErrAmountNotPositive     = validationError("the amount must be larger than zero")
	ErrDescriptionEmpty      = validationError("the description must not be empty")
	ErrNameEmpty             = validationError("the name must not be empty")
	ErrDateMissing           = validationError("the date must be set")
	ErrAccountTypeInvalid    = validationError("the account type must be one of checking, savings, payment, other")
	ErrInitialBalanceChanged = validationError("the initial balance and its date cannot be changed after the account was created")
	ErrCardBrandInvalid      = validationError("the card brand must be one of visa, mastercard, elo, amex, other")
	ErrDayOfMonthInvalid     = validationError("closing and due day must be between 1 and 31")
	ErrLimitNotPositive      = validationError("the credit limit must be larger than zero")
	ErrCategoryNameNotUnique = validationError("the category name must be unique")
	ErrThirdPartyNotUnique   = validationError("the third party name must be unique")

	ErrTransactionTypeInvalid         = validationError("the transaction type must be one of income, expense")
	ErrTransactionStatusInvalid       = validationError("the transaction status must be one of pending, completed, paid")
	ErrResponsibleInvalid             = validationError("the responsible party must be one of self, partner, third_party")
	ErrThirdPartyRequired             = validationError("an expense paid for a third party must reference the third party")
	ErrAccountAndCardSet              = validationError("a transaction can reference either an account or a credit card, not both")
	ErrInstallmentsInvalid            = validationError("the installment number must be between 1 and the total number of installments")
	ErrTransactionFieldImmutable      = validationError("only status and category of a transaction can be changed")
	ErrPaidAmountInvalid              = validationError("the paid amount must be between zero and the amount")
	ErrReceivableAmountBelowPaid      = validationError("the amount of a receivable cannot be lower than what has already been paid")
	ErrScheduledIncomeStatusInvalid   = validationError("the scheduled income status must be one of pending, received")
	ErrOverpayment                    = validationError("the payment is larger than the pending amount")
	ErrDestinationAccountNotSet       = validationError("the destination account for the payment must be set")
	ErrProfileLinkedToSelf            = validationError("an owner cannot be linked to themselves")
	ErrCategoryInUse                  = conflictError("the category is used by transactions and cannot be deleted")
	ErrScheduledIncomeAlreadyReceived = conflictError("the scheduled income has already been received")
)

// BalanceConflictError is returned when a third party is deleted while
// it still owes money.
type BalanceConflictError struct {
	ThirdPartyID uuid.UUID
	Balance      decimal.Decimal
}

func (e *BalanceConflictError) Error() string {
	return fmt.Sprintf("the third party still owes %s, settle the balance before deleting it", e.Balance.StringFixed(2))
}

func (e *BalanceConflictError) Unwrap() error {
	return ErrConflict
}
