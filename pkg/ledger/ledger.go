// Package ledger derives balances and totals from the transactions in a
// store.Snapshot.
//
// All functions are total. Unknown IDs yield zero values, never errors.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/config"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
)

// AccountBalance returns the balance of an account: the initial balance
// plus all income minus all expenses linked to the account.
//
// Transactions that have been unlinked from the account do not count.
func AccountBalance(s store.Snapshot, accountID uuid.UUID) decimal.Decimal {
	account, ok := s.Account(accountID)
	if !ok {
		return decimal.Zero
	}

	balance := account.InitialBalance
	for _, t := range s.Transactions {
		if !references(t.AccountID, accountID) {
			continue
		}

		if t.IsIncome() {
			balance = balance.Add(t.Amount)
		} else if t.IsExpense() {
			balance = balance.Sub(t.Amount)
		}
	}

	return balance
}

// BillingWindow returns the billing cycle of a card with the closing day
// that contains asOf. The start is inclusive, the end exclusive.
//
// If the closing day does not exist in a month, the last day of that month is used.
func BillingWindow(closingDay int, asOf time.Time) (start, end time.Time) {
	month := types.MonthOf(asOf)
	closing := month.Day(closingDay)

	if !types.DateOf(asOf).Before(closing) {
		return closing, month.AddDate(0, 1).Day(closingDay)
	}

	return month.AddDate(0, -1).Day(closingDay), closing
}

// CreditCardCurrentBill returns the amount of the card's current bill.
//
// With BillPolicyWindow, this is the sum of all expenses in the billing
// cycle containing asOf. With BillPolicyPending, it is the sum of all
// pending expenses on the card regardless of their date.
func CreditCardCurrentBill(s store.Snapshot, cardID uuid.UUID, asOf time.Time, policy config.BillPolicy) decimal.Decimal {
	card, ok := s.CreditCard(cardID)
	if !ok {
		return decimal.Zero
	}

	var include func(models.Transaction) bool
	switch policy {
	case config.BillPolicyPending:
		include = func(t models.Transaction) bool {
			return t.Status == models.TransactionStatusPending
		}
	default:
		start, end := BillingWindow(card.ClosingDay, asOf)
		include = func(t models.Transaction) bool {
			return !t.Date.Before(start) && t.Date.Before(end)
		}
	}

	bill := decimal.Zero
	for _, t := range s.Transactions {
		if t.IsExpense() && references(t.CreditCardID, cardID) && include(t) {
			bill = bill.Add(t.Amount)
		}
	}

	return bill
}

// MonthlyIncome returns the income of the owner in the month.
//
// Income received by the partner or a third party is not included.
func MonthlyIncome(s store.Snapshot, month types.Month) decimal.Decimal {
	return monthlySum(s, month, models.TransactionTypeIncome)
}

// MonthlyExpense returns what the owner spent for themselves in the month.
//
// Expenses for the partner or a third party are not included.
func MonthlyExpense(s store.Snapshot, month types.Month) decimal.Decimal {
	return monthlySum(s, month, models.TransactionTypeExpense)
}

func monthlySum(s store.Snapshot, month types.Month, transactionType models.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range s.Transactions {
		if t.Type == transactionType && t.Responsible == models.ResponsibleSelf && month.Contains(t.Date) {
			sum = sum.Add(t.Amount)
		}
	}

	return sum
}

// CardExpenses returns the sum of expenses on the card in the calendar month.
func CardExpenses(s store.Snapshot, cardID uuid.UUID, month types.Month) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range s.Transactions {
		if t.IsExpense() && references(t.CreditCardID, cardID) && month.Contains(t.Date) {
			sum = sum.Add(t.Amount)
		}
	}

	return sum
}

// references reports if the optional reference points to id.
func references(ref *uuid.UUID, id uuid.UUID) bool {
	return ref != nil && *ref == id
}
