package settlement

import (
	"context"

	"github.com/household-finance/backend/pkg/ledger"
	"github.com/household-finance/backend/pkg/models"
	"github.com/household-finance/backend/pkg/store"
)

// Added contains everything created for a new transaction.
type Added struct {
	Transactions []models.Transaction `json:"transactions"` // One transaction per installment
	Receivables  []models.Receivable  `json:"receivables"`  // Debts of the third party the expense was for
}

// AddTransaction creates a transaction. Purchases in installments are
// split into one transaction per installment, the first of which is
// the parent of the others.
//
// For expenses paid for a third party, a receivable for the third party
// is created for each transaction. It is due on the due date of the
// transaction or, if there is none, on its date.
func (e *Engine) AddTransaction(ctx context.Context, owners store.Owners, transaction models.Transaction, installments int) (Added, error) {
	if installments == 0 {
		installments = 1
	}

	transactions, err := ledger.SplitInstallments(transaction, installments)
	if err != nil {
		return Added{}, err
	}

	added := Added{
		Transactions: make([]models.Transaction, 0, len(transactions)),
		Receivables:  make([]models.Receivable, 0),
	}

	err = e.store.Transaction(ctx, func(s *store.Store) error {
		for i, t := range transactions {
			if i > 0 {
				parent := added.Transactions[0].ID
				t.ParentTransactionID = &parent
			}

			created, err := s.CreateTransaction(ctx, owners, t)
			if err != nil {
				return err
			}
			added.Transactions = append(added.Transactions, created)

			if !created.IsExpense() || created.Responsible != models.ResponsibleThirdParty {
				continue
			}

			due := created.Date
			if created.DueDate != nil {
				due = *created.DueDate
			}

			receivable, err := s.CreateReceivable(ctx, owners, models.Receivable{
				ThirdPartyID:  *created.ThirdPartyID,
				TransactionID: &created.ID,
				Description:   created.Description,
				Amount:        created.Amount,
				DueDate:       due,
			})
			if err != nil {
				return err
			}
			added.Receivables = append(added.Receivables, receivable)
		}

		return nil
	})
	if err != nil {
		return Added{}, err
	}

	return added, nil
}
