package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// ReceivableUpdate contains the fields of a receivable that can be updated.
//
// The paid amount only changes with payments, see settlement.Engine.
type ReceivableUpdate struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"dueDate"`
}

// ListReceivables returns all receivables, sorted by due date.
func (s *Store) ListReceivables(ctx context.Context, owners Owners) ([]models.Receivable, error) {
	return list[models.Receivable](s.conn(ctx), owners, "due_date ASC, id ASC", "ThirdParty")
}

func (s *Store) GetReceivable(ctx context.Context, owners Owners, id uuid.UUID) (models.Receivable, error) {
	return get[models.Receivable](s.conn(ctx), owners, id, "ThirdParty")
}

// ThirdPartyReceivables returns every receivable of the third party, sorted
// by due date. It does not filter by owner, callers check access to the
// third party first.
func (s *Store) ThirdPartyReceivables(ctx context.Context, thirdPartyID uuid.UUID) ([]models.Receivable, error) {
	receivables := make([]models.Receivable, 0)
	err := s.conn(ctx).
		Where("third_party_id = ?", thirdPartyID).
		Order("due_date ASC, id ASC").
		Preload("ThirdParty").
		Find(&receivables).Error
	if err != nil {
		return nil, err
	}

	return receivables, nil
}

// CreateReceivable creates a receivable with nothing paid yet.
//
// The third party must belong to the acting owner. A receivable always has
// the same owner as its third party, so whoever owns the third party can
// settle all of its debts.
func (s *Store) CreateReceivable(ctx context.Context, owners Owners, receivable models.Receivable) (models.Receivable, error) {
	db := s.conn(ctx)
	receivable.OwnerID = owners.Owner
	receivable.PaidAmount = decimal.Zero

	thirdParty, err := getOwned[models.ThirdParty](db, owners, receivable.ThirdPartyID)
	if err != nil {
		return models.Receivable{}, err
	}

	err = create(db, &receivable)
	if err != nil {
		return models.Receivable{}, err
	}

	receivable.ThirdParty = &thirdParty
	return receivable, nil
}

// UpdateReceivable applies the update to the receivable. The amount can
// not be lowered below what has already been paid.
func (s *Store) UpdateReceivable(ctx context.Context, owners Owners, id uuid.UUID, update ReceivableUpdate) (models.Receivable, error) {
	receivable, err := getOwned[models.Receivable](s.conn(ctx), owners, id)
	if err != nil {
		return models.Receivable{}, err
	}

	if update.Amount != nil && update.Amount.LessThan(receivable.PaidAmount) {
		return models.Receivable{}, models.ErrReceivableAmountBelowPaid
	}

	set(&receivable.Description, update.Description)
	set(&receivable.Amount, update.Amount)
	set(&receivable.DueDate, update.DueDate)

	err = save(s.conn(ctx), &receivable)
	if err != nil {
		return models.Receivable{}, err
	}

	return receivable, nil
}

// SaveReceivable writes the receivable with its current paid amount.
//
// The paid amount of a receivable never decreases.
func (s *Store) SaveReceivable(ctx context.Context, owners Owners, receivable models.Receivable) (models.Receivable, error) {
	stored, err := getOwned[models.Receivable](s.conn(ctx), owners, receivable.ID)
	if err != nil {
		return models.Receivable{}, err
	}

	if receivable.PaidAmount.LessThan(stored.PaidAmount) {
		return models.Receivable{}, models.ErrPaidAmountInvalid
	}

	receivable.OwnerID = stored.OwnerID
	err = save(s.conn(ctx), &receivable)
	if err != nil {
		return models.Receivable{}, err
	}

	return receivable, nil
}

// DeleteReceivable deletes a receivable. The transaction it was created from is kept.
func (s *Store) DeleteReceivable(ctx context.Context, owners Owners, id uuid.UUID) error {
	receivable, err := getOwned[models.Receivable](s.conn(ctx), owners, id)
	if err != nil {
		return err
	}

	return s.conn(ctx).Delete(&receivable).Error
}
