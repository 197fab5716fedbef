package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/household-finance/backend/internal/types"
	"github.com/household-finance/backend/pkg/models"
	"gorm.io/gorm"
)

// TransactionUpdate contains the only fields of a transaction that can be
// changed after it has been created.
//
// A CategoryID pointing to the nil UUID removes the category.
type TransactionUpdate struct {
	Status     *models.TransactionStatus `json:"status"`
	CategoryID *uuid.UUID                `json:"categoryId"`
}

// TransactionFilter limits the transactions that are listed.
type TransactionFilter struct {
	Month        types.Month // Only transactions dated in this month
	AccountID    *uuid.UUID
	CreditCardID *uuid.UUID
	ThirdPartyID *uuid.UUID
}

// transactionDisplay are the associations loaded for transactions returned to clients.
var transactionDisplay = []string{"Account", "CreditCard", "Category", "ThirdParty"}

// ListTransactions returns the transactions matching the filter, newest first.
func (s *Store) ListTransactions(ctx context.Context, owners Owners, filter TransactionFilter) ([]models.Transaction, error) {
	q := s.conn(ctx)

	if !filter.Month.IsZero() {
		q = q.Where("date >= ? AND date < ?", filter.Month.Day(1), filter.Month.AddDate(0, 1).Day(1))
	}

	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}

	if filter.CreditCardID != nil {
		q = q.Where("credit_card_id = ?", *filter.CreditCardID)
	}

	if filter.ThirdPartyID != nil {
		q = q.Where("third_party_id = ?", *filter.ThirdPartyID)
	}

	return list[models.Transaction](q, owners, "date DESC, created_at DESC", transactionDisplay...)
}

func (s *Store) GetTransaction(ctx context.Context, owners Owners, id uuid.UUID) (models.Transaction, error) {
	return get[models.Transaction](s.conn(ctx), owners, id, transactionDisplay...)
}

// CreateTransaction creates a transaction for the acting owner. All
// references must point to resources the owner can read.
func (s *Store) CreateTransaction(ctx context.Context, owners Owners, transaction models.Transaction) (models.Transaction, error) {
	db := s.conn(ctx)
	transaction.OwnerID = owners.Owner

	refs := []error{
		requireReference[models.Account](db, owners, transaction.AccountID, "account"),
		requireReference[models.CreditCard](db, owners, transaction.CreditCardID, "credit card"),
		requireReference[models.Category](db, owners, transaction.CategoryID, "category"),
		requireReference[models.ThirdParty](db, owners, transaction.ThirdPartyID, "third party"),
	}
	for _, err := range refs {
		if err != nil {
			return models.Transaction{}, err
		}
	}

	err := create(db, &transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// UpdateTransaction changes status and category of a transaction.
func (s *Store) UpdateTransaction(ctx context.Context, owners Owners, id uuid.UUID, update TransactionUpdate) (models.Transaction, error) {
	db := s.conn(ctx)

	transaction, err := getOwned[models.Transaction](db, owners, id)
	if err != nil {
		return models.Transaction{}, err
	}

	if update.CategoryID != nil {
		err = requireReference[models.Category](db, owners, update.CategoryID, "category")
		if err != nil {
			return models.Transaction{}, err
		}

		transaction.CategoryID = update.CategoryID
	}

	set(&transaction.Status, update.Status)

	err = save(db, &transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction deletes a transaction. Receivables created from it are kept.
func (s *Store) DeleteTransaction(ctx context.Context, owners Owners, id uuid.UUID) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		transaction, err := getOwned[models.Transaction](tx, owners, id)
		if err != nil {
			return err
		}

		return tx.Delete(&transaction).Error
	})
}
