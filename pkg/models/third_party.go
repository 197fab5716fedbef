package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ThirdParty is a person who may owe money to the owner.
type ThirdParty struct {
	DefaultModel
	OwnerID      uuid.UUID `json:"ownerId" gorm:"uniqueIndex:third_party_owner_name"`
	Name         string    `json:"name" example:"Maria"`
	NameKey      string    `json:"-" gorm:"uniqueIndex:third_party_owner_name"`
	Relationship string    `json:"relationship" example:"sister"`
	Avatar       string    `json:"avatar" example:"https://example.com/avatars/maria.png"`
}

// BeforeSave validates the third party and sets the key used for
// case insensitive uniqueness of the name.
func (t *ThirdParty) BeforeSave(_ *gorm.DB) error {
	if err := checkOwner(t.OwnerID); err != nil {
		return err
	}

	t.Name = strings.TrimSpace(t.Name)
	t.Relationship = strings.TrimSpace(t.Relationship)
	t.Avatar = strings.TrimSpace(t.Avatar)

	if t.Name == "" {
		return ErrNameEmpty
	}

	t.NameKey = NameKey(t.Name)
	return nil
}
