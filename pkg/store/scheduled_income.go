package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// ScheduledIncomeUpdate contains the fields of a scheduled income that can be updated.
type ScheduledIncomeUpdate struct {
	Description  *string          `json:"description"`
	Amount       *decimal.Decimal `json:"amount"`
	ExpectedDate *time.Time       `json:"expectedDate"`
	Notes        *string          `json:"notes"`
}

// ListScheduledIncomes returns all scheduled incomes, sorted by expected date.
func (s *Store) ListScheduledIncomes(ctx context.Context, owners Owners) ([]models.ScheduledIncome, error) {
	return list[models.ScheduledIncome](s.conn(ctx), owners, "expected_date ASC, id ASC")
}

func (s *Store) GetScheduledIncome(ctx context.Context, owners Owners, id uuid.UUID) (models.ScheduledIncome, error) {
	return get[models.ScheduledIncome](s.conn(ctx), owners, id)
}

// CreateScheduledIncome creates a pending scheduled income.
func (s *Store) CreateScheduledIncome(ctx context.Context, owners Owners, income models.ScheduledIncome) (models.ScheduledIncome, error) {
	income.OwnerID = owners.Owner
	income.Status = models.ScheduledIncomeStatusPending
	income.TransactionID = nil

	err := create(s.conn(ctx), &income)
	if err != nil {
		return models.ScheduledIncome{}, err
	}

	return income, nil
}

// UpdateScheduledIncome applies the update to a scheduled income that has
// not been received yet.
func (s *Store) UpdateScheduledIncome(ctx context.Context, owners Owners, id uuid.UUID, update ScheduledIncomeUpdate) (models.ScheduledIncome, error) {
	income, err := getOwned[models.ScheduledIncome](s.conn(ctx), owners, id)
	if err != nil {
		return models.ScheduledIncome{}, err
	}

	if !income.IsPending() {
		return models.ScheduledIncome{}, models.ErrScheduledIncomeAlreadyReceived
	}

	set(&income.Description, update.Description)
	set(&income.Amount, update.Amount)
	set(&income.ExpectedDate, update.ExpectedDate)
	set(&income.Notes, update.Notes)

	err = save(s.conn(ctx), &income)
	if err != nil {
		return models.ScheduledIncome{}, err
	}

	return income, nil
}

// SaveScheduledIncome writes the scheduled income.
//
// Received incomes cannot be changed.
func (s *Store) SaveScheduledIncome(ctx context.Context, owners Owners, income models.ScheduledIncome) (models.ScheduledIncome, error) {
	stored, err := getOwned[models.ScheduledIncome](s.conn(ctx), owners, income.ID)
	if err != nil {
		return models.ScheduledIncome{}, err
	}

	if !stored.IsPending() {
		return models.ScheduledIncome{}, models.ErrScheduledIncomeAlreadyReceived
	}

	income.OwnerID = stored.OwnerID
	err = save(s.conn(ctx), &income)
	if err != nil {
		return models.ScheduledIncome{}, err
	}

	return income, nil
}

func (s *Store) DeleteScheduledIncome(ctx context.Context, owners Owners, id uuid.UUID) error {
	income, err := getOwned[models.ScheduledIncome](s.conn(ctx), owners, id)
	if err != nil {
		return err
	}

	return s.conn(ctx).Delete(&income).Error
}
