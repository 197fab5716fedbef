package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"golang.org/x/exp/slices"
)

// Snapshot holds all resources in the scope of a set of owners at one
// point in time. All derived values are computed from a Snapshot.
type Snapshot struct {
	Accounts         []models.Account
	CreditCards      []models.CreditCard
	Categories       []models.Category
	ThirdParties     []models.ThirdParty
	Transactions     []models.Transaction // Sorted by date, newest first
	Receivables      []models.Receivable  // Sorted by due date, oldest first
	ScheduledIncomes []models.ScheduledIncome
}

// Load reads all resources in the scope.
func (s *Store) Load(ctx context.Context, owners Owners) (Snapshot, error) {
	var (
		snapshot Snapshot
		err      error
	)

	db := s.conn(ctx)

	if snapshot.Accounts, err = list[models.Account](db, owners, "name ASC"); err != nil {
		return Snapshot{}, err
	}

	if snapshot.CreditCards, err = list[models.CreditCard](db, owners, "name ASC"); err != nil {
		return Snapshot{}, err
	}

	if snapshot.Categories, err = list[models.Category](db, owners, "name ASC"); err != nil {
		return Snapshot{}, err
	}

	if snapshot.ThirdParties, err = list[models.ThirdParty](db, owners, "name ASC"); err != nil {
		return Snapshot{}, err
	}

	if snapshot.Transactions, err = list[models.Transaction](db, owners, "date DESC, created_at DESC"); err != nil {
		return Snapshot{}, err
	}

	if snapshot.Receivables, err = list[models.Receivable](db, owners, "due_date ASC, id ASC"); err != nil {
		return Snapshot{}, err
	}

	if snapshot.ScheduledIncomes, err = list[models.ScheduledIncome](db, owners, "expected_date ASC, id ASC"); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

type identifiable interface {
	Identity() uuid.UUID
}

// find returns the resource with the ID.
func find[T identifiable](resources []T, id uuid.UUID) (T, bool) {
	i := slices.IndexFunc(resources, func(r T) bool { return r.Identity() == id })
	if i < 0 {
		var zero T
		return zero, false
	}

	return resources[i], true
}

// upsert returns a copy of resources with r replacing the resource with
// the same ID. If there is none, r is appended.
func upsert[T identifiable](resources []T, r T) []T {
	out := slices.Clone(resources)

	i := slices.IndexFunc(out, func(e T) bool { return e.Identity() == r.Identity() })
	if i < 0 {
		return append(out, r)
	}

	out[i] = r
	return out
}

func (s Snapshot) Account(id uuid.UUID) (models.Account, bool) {
	return find(s.Accounts, id)
}

func (s Snapshot) CreditCard(id uuid.UUID) (models.CreditCard, bool) {
	return find(s.CreditCards, id)
}

func (s Snapshot) Category(id uuid.UUID) (models.Category, bool) {
	return find(s.Categories, id)
}

func (s Snapshot) ThirdParty(id uuid.UUID) (models.ThirdParty, bool) {
	return find(s.ThirdParties, id)
}

func (s Snapshot) Transaction(id uuid.UUID) (models.Transaction, bool) {
	return find(s.Transactions, id)
}

func (s Snapshot) Receivable(id uuid.UUID) (models.Receivable, bool) {
	return find(s.Receivables, id)
}

func (s Snapshot) ScheduledIncome(id uuid.UUID) (models.ScheduledIncome, bool) {
	return find(s.ScheduledIncomes, id)
}

// Apply returns a new Snapshot with the records created or updated.
//
// This is used to update a Snapshot with the results of a mutation
// without reading everything again. Records of unknown types are ignored.
func (s Snapshot) Apply(records ...any) Snapshot {
	for _, record := range records {
		switch r := record.(type) {
		case models.Account:
			s.Accounts = upsert(s.Accounts, r)
		case models.CreditCard:
			s.CreditCards = upsert(s.CreditCards, r)
		case models.Category:
			s.Categories = upsert(s.Categories, r)
		case models.ThirdParty:
			s.ThirdParties = upsert(s.ThirdParties, r)
		case models.Transaction:
			s.Transactions = upsert(s.Transactions, r)
		case models.Receivable:
			s.Receivables = upsert(s.Receivables, r)
		case models.ScheduledIncome:
			s.ScheduledIncomes = upsert(s.ScheduledIncomes, r)
		}
	}

	return s
}
