package settlement

import (
	"context"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ThirdPartyBalance returns what the third party still owes.
func (e *Engine) ThirdPartyBalance(ctx context.Context, owners store.Owners, thirdPartyID uuid.UUID) (decimal.Decimal, error) {
	_, err := e.store.GetThirdParty(ctx, owners, thirdPartyID)
	if err != nil {
		return decimal.Zero, err
	}

	receivables, err := e.store.ThirdPartyReceivables(ctx, thirdPartyID)
	if err != nil {
		return decimal.Zero, err
	}

	return ThirdPartyBalance(store.Snapshot{Receivables: receivables}, thirdPartyID), nil
}

// DeleteThirdParty deletes a third party that does not owe anything.
//
// The balance includes every receivable of the third party, no matter who
// owns it. If it is not zero, a *models.BalanceConflictError with the
// balance is returned.
func (e *Engine) DeleteThirdParty(ctx context.Context, owners store.Owners, thirdPartyID uuid.UUID) error {
	return e.store.Transaction(ctx, func(s *store.Store) error {
		_, err := s.GetOwnedThirdParty(ctx, owners, thirdPartyID)
		if err != nil {
			return err
		}

		receivables, err := s.ThirdPartyReceivables(ctx, thirdPartyID)
		if err != nil {
			return err
		}

		balance := ThirdPartyBalance(store.Snapshot{Receivables: receivables}, thirdPartyID)
		if balance.IsPositive() {
			log.Debug().Str("third-party", thirdPartyID.String()).Str("balance", balance.String()).Msg("Refusing deletion")
			return &models.BalanceConflictError{ThirdPartyID: thirdPartyID, Balance: balance}
		}

		return s.DeleteThirdParty(ctx, owners, thirdPartyID)
	})
}
