// Package settlement applies payments to receivables and keeps the
// balances of third parties consistent.
//
// Every operation that writes more than one resource runs in a single
// database transaction.
package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Engine executes settlement operations against a store.
type Engine struct {
	store *store.Store
	now   func() time.Time
}

// New returns an Engine using s.
func New(s *store.Store) *Engine {
	return &Engine{
		store: s,
		now:   time.Now,
	}
}

// PaymentResult is the outcome of a payment applied to a receivable.
type PaymentResult struct {
	Amount      decimal.Decimal    `json:"amount" example:"50.00"` // The amount applied to the receivable
	Receivable  models.Receivable  `json:"receivable"`             // The receivable after the payment
	Transaction models.Transaction `json:"transaction"`            // The income transaction for the payment
}

// RecordPayment applies a payment to a single receivable and records the
// money received as income on the destination account.
func (e *Engine) RecordPayment(ctx context.Context, owners store.Owners, receivableID uuid.UUID, amount decimal.Decimal, destinationAccountID uuid.UUID) (PaymentResult, error) {
	if err := checkPayment(amount, destinationAccountID); err != nil {
		return PaymentResult{}, err
	}

	var result PaymentResult
	err := e.store.Transaction(ctx, func(s *store.Store) error {
		receivable, err := s.GetReceivable(ctx, owners, receivableID)
		if err != nil {
			return err
		}

		_, err = s.GetAccount(ctx, owners, destinationAccountID)
		if err != nil {
			return err
		}

		result, err = e.pay(ctx, s, owners, receivable, amount, destinationAccountID)
		return err
	})
	if err != nil {
		return PaymentResult{}, err
	}

	observePayments(result)
	return result, nil
}

// SettleAcrossDebts applies a payment from a third party to their open
// receivables, oldest due date first.
//
// Only the owner of the third party can settle its debts. A payment larger
// than the balance of the third party is rejected as a whole.
func (e *Engine) SettleAcrossDebts(ctx context.Context, owners store.Owners, thirdPartyID uuid.UUID, total decimal.Decimal, destinationAccountID uuid.UUID) ([]PaymentResult, error) {
	if err := checkPayment(total, destinationAccountID); err != nil {
		return nil, err
	}

	results := make([]PaymentResult, 0)
	err := e.store.Transaction(ctx, func(s *store.Store) error {
		thirdParty, err := s.GetOwnedThirdParty(ctx, owners, thirdPartyID)
		if err != nil {
			return err
		}

		_, err = s.GetAccount(ctx, owners, destinationAccountID)
		if err != nil {
			return err
		}

		receivables, err := s.ThirdPartyReceivables(ctx, thirdPartyID)
		if err != nil {
			return err
		}

		allocations, err := Allocate(openReceivables(receivables, thirdPartyID), total)
		if err != nil {
			return err
		}

		for _, allocation := range allocations {
			result, err := e.pay(ctx, s, owners, allocation.Receivable, allocation.Amount, destinationAccountID)
			if err != nil {
				return err
			}

			results = append(results, result)
		}

		log.Debug().
			Str("third-party", thirdParty.ID.String()).
			Str("total", total.String()).
			Int("receivables", len(results)).
			Msg("Settlement")

		return nil
	})
	if err != nil {
		return nil, err
	}

	observePayments(results...)
	return results, nil
}

// pay applies the amount to the receivable and creates the income transaction.
func (e *Engine) pay(ctx context.Context, s *store.Store, owners store.Owners, receivable models.Receivable, amount decimal.Decimal, destinationAccountID uuid.UUID) (PaymentResult, error) {
	if amount.GreaterThan(receivable.Pending()) {
		return PaymentResult{}, models.ErrOverpayment
	}

	receivable.PaidAmount = receivable.PaidAmount.Add(amount)
	receivable, err := s.SaveReceivable(ctx, owners, receivable)
	if err != nil {
		return PaymentResult{}, err
	}

	name := ""
	if receivable.ThirdParty != nil {
		name = receivable.ThirdParty.Name
	}

	transaction, err := s.CreateTransaction(ctx, owners, models.Transaction{
		Type:         models.TransactionTypeIncome,
		Description:  fmt.Sprintf("Payment from %s: %s", name, receivable.Description),
		Amount:       amount,
		Date:         types.DateOf(e.now()),
		Responsible:  models.ResponsibleSelf,
		Status:       models.TransactionStatusCompleted,
		AccountID:    &destinationAccountID,
		ThirdPartyID: &receivable.ThirdPartyID,
	})
	if err != nil {
		return PaymentResult{}, err
	}

	log.Debug().
		Str("receivable", receivable.ID.String()).
		Str("amount", amount.String()).
		Str("status", string(receivable.Status)).
		Msg("Payment")

	return PaymentResult{
		Amount:      amount,
		Receivable:  receivable,
		Transaction: transaction,
	}, nil
}

func checkPayment(amount decimal.Decimal, destinationAccountID uuid.UUID) error {
	if !amount.IsPositive() {
		return models.ErrAmountNotPositive
	}

	if destinationAccountID == uuid.Nil {
		return models.ErrDestinationAccountNotSet
	}

	return nil
}
