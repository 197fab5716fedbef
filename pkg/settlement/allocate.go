package settlement

import (
	"bytes"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Allocation is the part of a payment applied to one receivable.
type Allocation struct {
	Receivable models.Receivable
	Amount     decimal.Decimal
}

// Allocate distributes total over the receivables. Receivables are paid
// in order of their due date, ties are broken by ID. Each receivable gets
// as much as is pending on it until total is used up.
//
// If total is larger than what is pending on all receivables,
// ErrOverpayment is returned and nothing is allocated.
func Allocate(receivables []models.Receivable, total decimal.Decimal) ([]Allocation, error) {
	if !total.IsPositive() {
		return nil, models.ErrAmountNotPositive
	}

	open := make([]models.Receivable, 0, len(receivables))
	pending := decimal.Zero
	for _, r := range receivables {
		if r.IsOpen() {
			open = append(open, r)
			pending = pending.Add(r.Pending())
		}
	}

	if total.GreaterThan(pending) {
		return nil, models.ErrOverpayment
	}

	slices.SortStableFunc(open, func(a, b models.Receivable) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	allocations := make([]Allocation, 0)
	remaining := total
	for _, r := range open {
		if !remaining.IsPositive() {
			break
		}

		amount := decimal.Min(remaining, r.Pending())
		allocations = append(allocations, Allocation{Receivable: r, Amount: amount})
		remaining = remaining.Sub(amount)
	}

	return allocations, nil
}

// ThirdPartyBalance returns what the third party still owes.
func ThirdPartyBalance(s store.Snapshot, thirdPartyID uuid.UUID) decimal.Decimal {
	balance := decimal.Zero
	for _, r := range openReceivables(s.Receivables, thirdPartyID) {
		balance = balance.Add(r.Pending())
	}

	return balance
}

// openReceivables returns the receivables of the third party that are not paid.
func openReceivables(receivables []models.Receivable, thirdPartyID uuid.UUID) []models.Receivable {
	open := make([]models.Receivable, 0)
	for _, r := range receivables {
		if r.ThirdPartyID == thirdPartyID && r.IsOpen() {
			open = append(open, r)
		}
	}

	return open
}
