package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/config"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/ledger"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Reminder is an open receivable that is due soon.
type Reminder struct {
	ReceivableID   uuid.UUID       `json:"receivableId"`
	ThirdPartyID   uuid.UUID       `json:"thirdPartyId"`
	ThirdPartyName string          `json:"thirdPartyName" example:"Maria"`
	Description    string          `json:"description" example:"Concert tickets"`
	DueDate        time.Time       `json:"dueDate" example:"2024-01-10T00:00:00Z"`
	Pending        decimal.Decimal `json:"pending" example:"70.00"`
}

// CollectionReminders returns the open receivables due within days from
// the day of from, soonest first.
func CollectionReminders(s store.Snapshot, from time.Time, days int) []Reminder {
	start := types.DateOf(from)
	end := start.AddDate(0, 0, days)

	reminders := make([]Reminder, 0)
	for _, r := range s.Receivables {
		if !r.IsOpen() || r.DueDate.Before(start) || r.DueDate.After(end) {
			continue
		}

		reminder := Reminder{
			ReceivableID: r.ID,
			ThirdPartyID: r.ThirdPartyID,
			Description:  r.Description,
			DueDate:      r.DueDate,
			Pending:      r.Pending(),
		}

		if thirdParty, ok := s.ThirdParty(r.ThirdPartyID); ok {
			reminder.ThirdPartyName = thirdParty.Name
		}

		reminders = append(reminders, reminder)
	}

	slices.SortStableFunc(reminders, func(a, b Reminder) int {
		return a.DueDate.Compare(b.DueDate)
	})

	return reminders
}

// CardTotal contains the spending on one credit card.
type CardTotal struct {
	CreditCardID uuid.UUID       `json:"creditCardId"`
	Name         string          `json:"name" example:"Platinum"`
	Color        string          `json:"color" example:"#1a1f71"`
	Expenses     decimal.Decimal `json:"expenses" example:"1250.00"`   // Expenses in the calendar month
	CurrentBill  decimal.Decimal `json:"currentBill" example:"980.00"` // The bill of the card as of the time of the report
}

// CardSpending returns the spending per credit card in the snapshot.
func CardSpending(s store.Snapshot, month types.Month, asOf time.Time, policy config.BillPolicy) []CardTotal {
	totals := make([]CardTotal, 0, len(s.CreditCards))
	for _, card := range s.CreditCards {
		totals = append(totals, CardTotal{
			CreditCardID: card.ID,
			Name:         card.Name,
			Color:        card.Color,
			Expenses:     ledger.CardExpenses(s, card.ID, month),
			CurrentBill:  ledger.CreditCardCurrentBill(s, card.ID, asOf, policy),
		})
	}

	return totals
}
