package ledger

import (
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// MaxInstallments is the largest number of installments a purchase can be split into.
const MaxInstallments = 360

// SplitInstallments expands a purchase paid in n monthly installments into
// one transaction per installment.
//
// The amount is split into cents. What cannot be split evenly is added to
// the first installment. Each installment is dated one month after the
// previous one on the same day, or the last day of shorter months.
//
// n must be between 1 and MaxInstallments. For n = 1, the transaction is
// returned unchanged. If the amount is too
// small to give every installment at least one cent, ErrAmountNotPositive
// is returned.
func SplitInstallments(t models.Transaction, n int) ([]models.Transaction, error) {
	if n < 1 || n > MaxInstallments {
		return nil, models.ErrInstallmentsInvalid
	}

	if n == 1 {
		return []models.Transaction{t}, nil
	}

	share := t.Amount.DivRound(decimal.NewFromInt(int64(n)), 8).Truncate(2)
	if !share.IsPositive() {
		return nil, models.ErrAmountNotPositive
	}

	first := t.Amount.Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))

	month := types.MonthOf(t.Date)
	day := t.Date.Day()

	var dueMonth types.Month
	var dueDay int
	if t.DueDate != nil {
		dueMonth = types.MonthOf(*t.DueDate)
		dueDay = t.DueDate.Day()
	}

	installments := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		installment := t
		installment.CurrentInstallment = i + 1
		installment.TotalInstallments = n
		installment.Date = month.AddDate(0, i).Day(day)

		installment.Amount = share
		if i == 0 {
			installment.Amount = first
		}

		if t.DueDate != nil {
			due := dueMonth.AddDate(0, i).Day(dueDay)
			installment.DueDate = &due
		}

		installments = append(installments, installment)
	}

	return installments, nil
}
