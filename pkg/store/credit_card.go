package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditCardUpdate contains the fields of a credit card that can be updated.
// Nil fields are left unchanged.
type CreditCardUpdate struct {
	Name       *string              `json:"name"`
	Brand      *models.CardBrand    `json:"brand"`
	Issuer     *string              `json:"issuer"`
	ClosingDay *int                 `json:"closingDay"`
	DueDay     *int                 `json:"dueDay"`
	Limit      *decimal.NullDecimal `json:"limit"`
	Color      *string              `json:"color"`
}

func (s *Store) ListCreditCards(ctx context.Context, owners Owners) ([]models.CreditCard, error) {
	return list[models.CreditCard](s.conn(ctx), owners, "name ASC")
}

func (s *Store) GetCreditCard(ctx context.Context, owners Owners, id uuid.UUID) (models.CreditCard, error) {
	return get[models.CreditCard](s.conn(ctx), owners, id)
}

// CreateCreditCard creates a credit card for the acting owner.
func (s *Store) CreateCreditCard(ctx context.Context, owners Owners, card models.CreditCard) (models.CreditCard, error) {
	card.OwnerID = owners.Owner

	err := create(s.conn(ctx), &card)
	if err != nil {
		return models.CreditCard{}, err
	}

	return card, nil
}

// UpdateCreditCard applies the update to the credit card.
func (s *Store) UpdateCreditCard(ctx context.Context, owners Owners, id uuid.UUID, update CreditCardUpdate) (models.CreditCard, error) {
	card, err := getOwned[models.CreditCard](s.conn(ctx), owners, id)
	if err != nil {
		return models.CreditCard{}, err
	}

	set(&card.Name, update.Name)
	set(&card.Brand, update.Brand)
	set(&card.Issuer, update.Issuer)
	set(&card.ClosingDay, update.ClosingDay)
	set(&card.DueDay, update.DueDay)
	set(&card.Limit, update.Limit)
	set(&card.Color, update.Color)

	err = save(s.conn(ctx), &card)
	if err != nil {
		return models.CreditCard{}, err
	}

	return card, nil
}

// DeleteCreditCard deletes the credit card. Transactions referencing it
// are kept, but their credit card reference is removed.
func (s *Store) DeleteCreditCard(ctx context.Context, owners Owners, id uuid.UUID) (Unlinked, error) {
	var unlinked Unlinked

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := getOwned[models.CreditCard](tx, owners, id)
		if err != nil {
			return err
		}

		unlinked.Transactions, err = unlink(tx, "credit_card_id", card.ID)
		if err != nil {
			return err
		}

		return tx.Delete(&card).Error
	})

	return unlinked, err
}
