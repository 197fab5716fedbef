package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Unlinked reports how many transactions lost their reference to a
// deleted account or credit card.
type Unlinked struct {
	Transactions int64 `json:"transactions" example:"12"` // Number of transactions that do not reference the resource anymore
}

// AccountUpdate contains the fields of an account that can be updated.
// Nil fields are left unchanged.
//
// The initial balance and its date can only be sent with their current values.
type AccountUpdate struct {
	Name               *string             `json:"name"`
	Bank               *string             `json:"bank"`
	Type               *models.AccountType `json:"type"`
	Color              *string             `json:"color"`
	InitialBalance     *decimal.Decimal    `json:"initialBalance"`
	InitialBalanceDate *time.Time          `json:"initialBalanceDate"`
}

func (s *Store) ListAccounts(ctx context.Context, owners Owners) ([]models.Account, error) {
	return list[models.Account](s.conn(ctx), owners, "name ASC")
}

func (s *Store) GetAccount(ctx context.Context, owners Owners, id uuid.UUID) (models.Account, error) {
	return get[models.Account](s.conn(ctx), owners, id)
}

// CreateAccount creates an account for the acting owner.
func (s *Store) CreateAccount(ctx context.Context, owners Owners, account models.Account) (models.Account, error) {
	account.OwnerID = owners.Owner

	err := create(s.conn(ctx), &account)
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// UpdateAccount applies the update to the account.
func (s *Store) UpdateAccount(ctx context.Context, owners Owners, id uuid.UUID, update AccountUpdate) (models.Account, error) {
	account, err := getOwned[models.Account](s.conn(ctx), owners, id)
	if err != nil {
		return models.Account{}, err
	}

	if update.InitialBalance != nil && !update.InitialBalance.Equal(account.InitialBalance) {
		return models.Account{}, models.ErrInitialBalanceChanged
	}

	if update.InitialBalanceDate != nil && !sameDay(*update.InitialBalanceDate, account.InitialBalanceDate) {
		return models.Account{}, models.ErrInitialBalanceChanged
	}

	set(&account.Name, update.Name)
	set(&account.Bank, update.Bank)
	set(&account.Type, update.Type)
	set(&account.Color, update.Color)

	err = save(s.conn(ctx), &account)
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// DeleteAccount deletes the account. Transactions referencing it are kept,
// but their account reference is removed.
func (s *Store) DeleteAccount(ctx context.Context, owners Owners, id uuid.UUID) (Unlinked, error) {
	var unlinked Unlinked

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := getOwned[models.Account](tx, owners, id)
		if err != nil {
			return err
		}

		unlinked.Transactions, err = unlink(tx, "account_id", account.ID)
		if err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})

	return unlinked, err
}

// unlink removes references to a resource from all transactions and
// returns the number of transactions that were changed.
func unlink(tx *gorm.DB, column string, id uuid.UUID) (int64, error) {
	result := tx.Model(&models.Transaction{}).Where(column+" = ?", id).UpdateColumn(column, nil)
	return result.RowsAffected, result.Error
}

// set assigns value to field if value is not nil.
func set[T any](field *T, value *T) {
	if value != nil {
		*field = *value
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
