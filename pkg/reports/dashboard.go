package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/config"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/ledger"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
)

// Options configures the dashboard.
type Options struct {
	AsOf               time.Time // Reference time for bills, due dates and reminders
	BillPolicy         config.BillPolicy
	RecentTransactions int
	TopCategories      int
	ReminderDays       int
}

// OptionsFromConfig returns the dashboard options configured for the backend.
func OptionsFromConfig(cfg *config.Config, asOf time.Time) Options {
	return Options{
		AsOf:               asOf,
		BillPolicy:         cfg.BillPolicy,
		RecentTransactions: cfg.RecentTransactionsLimit,
		TopCategories:      cfg.TopCategoriesLimit,
		ReminderDays:       cfg.ReminderDays,
	}
}

// AccountBalance is the current balance of an account.
type AccountBalance struct {
	AccountID uuid.UUID       `json:"accountId"`
	Name      string          `json:"name" example:"Nubank"`
	Balance   decimal.Decimal `json:"balance" example:"2310.17"`
}

// Display contains the summary amounts formatted for display.
type Display struct {
	Income           string `json:"income" example:"R$ 5.400,00"`
	Expenses         string `json:"expenses" example:"R$ 3.210,55"`
	Balance          string `json:"balance" example:"R$ 2.189,45"`
	ReceivablesTotal string `json:"receivablesTotal" example:"R$ 420,00"`
}

// Overview is everything shown on the dashboard for one month.
type Overview struct {
	Summary             Summary              `json:"summary"`
	Display             Display              `json:"display"`
	Accounts            []AccountBalance     `json:"accounts"`
	Cards               []CardTotal          `json:"cards"`
	TopCategories       []CategoryTotal      `json:"topCategories"`
	RecentTransactions  []models.Transaction `json:"recentTransactions"`
	Receivables         Breakdown            `json:"receivables"`
	UpcomingDueDates    []models.Transaction `json:"upcomingDueDates"`
	CollectionReminders []Reminder           `json:"collectionReminders"`
}

// Dashboard composes the dashboard for the month.
func Dashboard(s store.Snapshot, month types.Month, options Options) Overview {
	summary := MonthlySummary(s, month)

	accounts := make([]AccountBalance, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		accounts = append(accounts, AccountBalance{
			AccountID: a.ID,
			Name:      a.Name,
			Balance:   ledger.AccountBalance(s, a.ID),
		})
	}

	return Overview{
		Summary: summary,
		Display: Display{
			Income:           FormatBRL(summary.Income),
			Expenses:         FormatBRL(summary.Expenses),
			Balance:          FormatBRL(summary.Balance),
			ReceivablesTotal: FormatBRL(summary.ReceivablesTotal),
		},
		Accounts:            accounts,
		Cards:               CardSpending(s, month, options.AsOf, options.BillPolicy),
		TopCategories:       TopCategories(s, month, options.TopCategories),
		RecentTransactions:  RecentTransactions(s, month, options.RecentTransactions),
		Receivables:         ReceivablesBreakdown(s, month),
		UpcomingDueDates:    ledger.UpcomingDueDates(s, options.AsOf, options.ReminderDays),
		CollectionReminders: CollectionReminders(s, options.AsOf, options.ReminderDays),
	}
}
