package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
)

// ThirdPartyUpdate contains the fields of a third party that can be updated.
type ThirdPartyUpdate struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Avatar       *string `json:"avatar"`
}

func (s *Store) ListThirdParties(ctx context.Context, owners Owners) ([]models.ThirdParty, error) {
	return list[models.ThirdParty](s.conn(ctx), owners, "name ASC")
}

func (s *Store) GetThirdParty(ctx context.Context, owners Owners, id uuid.UUID) (models.ThirdParty, error) {
	return get[models.ThirdParty](s.conn(ctx), owners, id)
}

// GetOwnedThirdParty returns a third party of the acting owner. Third parties
// of a linked partner are not found.
func (s *Store) GetOwnedThirdParty(ctx context.Context, owners Owners, id uuid.UUID) (models.ThirdParty, error) {
	return getOwned[models.ThirdParty](s.conn(ctx), owners, id)
}

// CreateThirdParty creates a third party for the acting owner.
//
// Names are unique per owner, ignoring case.
func (s *Store) CreateThirdParty(ctx context.Context, owners Owners, thirdParty models.ThirdParty) (models.ThirdParty, error) {
	thirdParty.OwnerID = owners.Owner

	err := create(s.conn(ctx), &thirdParty)
	if err != nil {
		return models.ThirdParty{}, err
	}

	return thirdParty, nil
}

func (s *Store) UpdateThirdParty(ctx context.Context, owners Owners, id uuid.UUID, update ThirdPartyUpdate) (models.ThirdParty, error) {
	thirdParty, err := getOwned[models.ThirdParty](s.conn(ctx), owners, id)
	if err != nil {
		return models.ThirdParty{}, err
	}

	set(&thirdParty.Name, update.Name)
	set(&thirdParty.Relationship, update.Relationship)
	set(&thirdParty.Avatar, update.Avatar)

	err = save(s.conn(ctx), &thirdParty)
	if err != nil {
		return models.ThirdParty{}, err
	}

	return thirdParty, nil
}

// DeleteThirdParty deletes the third party and its receivables. Transactions
// referencing it are kept.
//
// This does not check for outstanding debts, use settlement.Engine.DeleteThirdParty
// for that.
func (s *Store) DeleteThirdParty(ctx context.Context, owners Owners, id uuid.UUID) error {
	thirdParty, err := getOwned[models.ThirdParty](s.conn(ctx), owners, id)
	if err != nil {
		return err
	}

	return s.conn(ctx).Delete(&thirdParty).Error
}
