package ledger

import (
	"time"

	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"golang.org/x/exp/slices"
)

// UpcomingDueDates returns the pending expenses of the owner and their
// partner that are due within days from the day of from, soonest first.
func UpcomingDueDates(s store.Snapshot, from time.Time, days int) []models.Transaction {
	start := types.DateOf(from)
	end := start.AddDate(0, 0, days)

	upcoming := make([]models.Transaction, 0)
	for _, t := range s.Transactions {
		if !t.IsExpense() || t.Status != models.TransactionStatusPending || t.DueDate == nil {
			continue
		}

		if t.Responsible == models.ResponsibleThirdParty {
			continue
		}

		if t.DueDate.Before(start) || t.DueDate.After(end) {
			continue
		}

		upcoming = append(upcoming, t)
	}

	slices.SortStableFunc(upcoming, func(a, b models.Transaction) int {
		return a.DueDate.Compare(*b.DueDate)
	})

	return upcoming
}
