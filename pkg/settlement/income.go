package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Receipt is a confirmed scheduled income.
type Receipt struct {
	ScheduledIncome models.ScheduledIncome `json:"scheduledIncome"` // The scheduled income, now received
	Transaction     models.Transaction     `json:"transaction"`     // The income transaction
}

// ConfirmScheduledIncomeReceipt records a scheduled income as received.
//
// The amount received can differ from the expected amount. A scheduled
// income can only be received once, confirming it again returns
// models.ErrScheduledIncomeAlreadyReceived and changes nothing.
func (e *Engine) ConfirmScheduledIncomeReceipt(ctx context.Context, owners store.Owners, scheduledIncomeID uuid.UUID, amount decimal.Decimal, date time.Time, destinationAccountID uuid.UUID) (Receipt, error) {
	if err := checkPayment(amount, destinationAccountID); err != nil {
		return Receipt{}, err
	}

	if date.IsZero() {
		return Receipt{}, models.ErrDateMissing
	}

	var receipt Receipt
	err := e.store.Transaction(ctx, func(s *store.Store) error {
		income, err := s.GetScheduledIncome(ctx, owners, scheduledIncomeID)
		if err != nil {
			return err
		}

		if !income.IsPending() {
			return models.ErrScheduledIncomeAlreadyReceived
		}

		_, err = s.GetAccount(ctx, owners, destinationAccountID)
		if err != nil {
			return err
		}

		transaction, err := s.CreateTransaction(ctx, owners, models.Transaction{
			Type:        models.TransactionTypeIncome,
			Description: income.Description,
			Amount:      amount,
			Date:        date,
			Responsible: models.ResponsibleSelf,
			Status:      models.TransactionStatusCompleted,
			AccountID:   &destinationAccountID,
		})
		if err != nil {
			return err
		}

		income.Status = models.ScheduledIncomeStatusReceived
		income.TransactionID = &transaction.ID

		income, err = s.SaveScheduledIncome(ctx, owners, income)
		if err != nil {
			return err
		}

		receipt = Receipt{ScheduledIncome: income, Transaction: transaction}
		return nil
	})
	if err != nil {
		return Receipt{}, err
	}

	log.Debug().Str("scheduled-income", scheduledIncomeID.String()).Str("amount", amount.String()).Msg("Income received")
	incomesConfirmed.Inc()

	return receipt, nil
}
