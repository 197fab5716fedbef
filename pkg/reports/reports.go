// Package reports composes the month scoped summaries shown on the dashboard.
//
// Everything in this package is read only and computed from a store.Snapshot.
package reports

import (
	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/ledger"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Summary contains the totals of a month.
type Summary struct {
	Month            types.Month     `json:"month" swaggertype:"string" example:"2024-01"`
	Income           decimal.Decimal `json:"income" example:"5400.00"`          // Income of the owner
	Expenses         decimal.Decimal `json:"expenses" example:"3210.55"`        // What the owner spent for themselves
	Balance          decimal.Decimal `json:"balance" example:"2189.45"`         // Income minus expenses
	ReceivablesTotal decimal.Decimal `json:"receivablesTotal" example:"420.00"` // What all third parties still owe, regardless of the month
}

// MonthlySummary returns the totals for the month.
func MonthlySummary(s store.Snapshot, month types.Month) Summary {
	income := ledger.MonthlyIncome(s, month)
	expenses := ledger.MonthlyExpense(s, month)

	outstanding := decimal.Zero
	for _, r := range s.Receivables {
		if r.Status != models.ReceivableStatusPaid {
			outstanding = outstanding.Add(r.Pending())
		}
	}

	return Summary{
		Month:            month,
		Income:           income,
		Expenses:         expenses,
		Balance:          income.Sub(expenses),
		ReceivablesTotal: outstanding,
	}
}

// CategoryTotal is the sum of expenses for one category.
type CategoryTotal struct {
	CategoryID uuid.UUID       `json:"categoryId"`
	Name       string          `json:"name" example:"Groceries"`
	Icon       string          `json:"icon" example:"🛒"`
	Color      string          `json:"color" example:"#22c55e"`
	Total      decimal.Decimal `json:"total" example:"812.40"`
}

// TopCategories returns the n categories with the highest expenses in the
// month, highest first. Categories with equal totals keep the order in
// which they first appear in the snapshot's transactions.
//
// Like ledger.MonthlyExpense, only the owner's own expenses are included,
// so the totals never add up to more than the month's expenses.
func TopCategories(s store.Snapshot, month types.Month, n int) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[uuid.UUID]int)

	for _, t := range s.Transactions {
		if !t.IsExpense() || t.CategoryID == nil || !month.Contains(t.Date) {
			continue
		}

		if t.Responsible != models.ResponsibleSelf {
			continue
		}

		i, ok := index[*t.CategoryID]
		if !ok {
			total := CategoryTotal{CategoryID: *t.CategoryID, Total: decimal.Zero}
			if category, ok := s.Category(*t.CategoryID); ok {
				total.Name = category.Name
				total.Icon = category.Icon
				total.Color = category.Color
			}

			i = len(totals)
			index[*t.CategoryID] = i
			totals = append(totals, total)
		}

		totals[i].Total = totals[i].Total.Add(t.Amount)
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	return limit(totals, n)
}

// RecentTransactions returns up to n transactions of the month, newest first.
// Transactions on the same day keep their order in the snapshot.
func RecentTransactions(s store.Snapshot, month types.Month, n int) []models.Transaction {
	recent := make([]models.Transaction, 0)
	for _, t := range s.Transactions {
		if month.Contains(t.Date) {
			recent = append(recent, t)
		}
	}

	slices.SortStableFunc(recent, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return limit(recent, n)
}

// Breakdown separates the money expected in a month by its source.
type Breakdown struct {
	ThirdPartyDebts  decimal.Decimal `json:"thirdPartyDebts" example:"120.00"`   // Outstanding receivables due in the month
	ScheduledIncomes decimal.Decimal `json:"scheduledIncomes" example:"5400.00"` // Pending scheduled incomes expected in the month
	Total            decimal.Decimal `json:"total" example:"5520.00"`
}

// ReceivablesBreakdown returns what is expected to come in during the month.
//
// Only what is still outstanding is included: the unpaid part of open
// receivables and scheduled incomes that have not been received.
func ReceivablesBreakdown(s store.Snapshot, month types.Month) Breakdown {
	debts := decimal.Zero
	for _, r := range s.Receivables {
		if r.IsOpen() && month.Contains(r.DueDate) {
			debts = debts.Add(r.Pending())
		}
	}

	incomes := decimal.Zero
	for _, i := range s.ScheduledIncomes {
		if i.IsPending() && month.Contains(i.ExpectedDate) {
			incomes = incomes.Add(i.Amount)
		}
	}

	return Breakdown{
		ThirdPartyDebts:  debts,
		ScheduledIncomes: incomes,
		Total:            debts.Add(incomes),
	}
}

// limit returns the first n elements of s. If n is not positive, s is returned.
func limit[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
