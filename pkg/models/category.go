package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Category is a user defined label for expenses.
type Category struct {
	DefaultModel
	OwnerID uuid.UUID `json:"ownerId" gorm:"uniqueIndex:category_owner_name"`
	Name    string    `json:"name" example:"Groceries"`
	NameKey string    `json:"-" gorm:"uniqueIndex:category_owner_name"` // Case folded name, unique per owner
	Icon    string    `json:"icon" example:"🛒"`
	Color   string    `json:"color" example:"#22c55e"`
}

// BeforeSave validates the category and sets the key used for
// case insensitive uniqueness of the name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	if err := checkOwner(c.OwnerID); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Color = strings.TrimSpace(c.Color)

	if c.Name == "" {
		return ErrNameEmpty
	}

	c.NameKey = NameKey(c.Name)
	return nil
}

// NameKey returns the form of a name that is compared when checking
// names for uniqueness.
func NameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
