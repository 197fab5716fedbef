package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"gorm.io/gorm"
)

// CategoryUpdate contains the fields of a category that can be updated.
type CategoryUpdate struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

func (s *Store) ListCategories(ctx context.Context, owners Owners) ([]models.Category, error) {
	return list[models.Category](s.conn(ctx), owners, "name ASC")
}

func (s *Store) GetCategory(ctx context.Context, owners Owners, id uuid.UUID) (models.Category, error) {
	return get[models.Category](s.conn(ctx), owners, id)
}

// CreateCategory creates a category for the acting owner.
//
// Names are unique per owner, ignoring case.
func (s *Store) CreateCategory(ctx context.Context, owners Owners, category models.Category) (models.Category, error) {
	category.OwnerID = owners.Owner

	err := create(s.conn(ctx), &category)
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (s *Store) UpdateCategory(ctx context.Context, owners Owners, id uuid.UUID, update CategoryUpdate) (models.Category, error) {
	category, err := getOwned[models.Category](s.conn(ctx), owners, id)
	if err != nil {
		return models.Category{}, err
	}

	set(&category.Name, update.Name)
	set(&category.Icon, update.Icon)
	set(&category.Color, update.Color)

	err = save(s.conn(ctx), &category)
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// DeleteCategory deletes a category that no transaction uses.
func (s *Store) DeleteCategory(ctx context.Context, owners Owners, id uuid.UUID) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := getOwned[models.Category](tx, owners, id)
		if err != nil {
			return err
		}

		var used int64
		err = tx.Model(&models.Transaction{}).Where("category_id = ?", category.ID).Count(&used).Error
		if err != nil {
			return err
		}

		if used > 0 {
			return models.ErrCategoryInUse
		}

		return tx.Delete(&category).Error
	})
}
