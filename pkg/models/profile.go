package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile links an owner to a partner. A linked partner's resources are
// readable together with the owner's own.
type Profile struct {
	DefaultModel
	OwnerID       uuid.UUID  `json:"ownerId" gorm:"uniqueIndex"`
	LinkedOwnerID *uuid.UUID `json:"linkedOwnerId"`
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	if err := checkOwner(p.OwnerID); err != nil {
		return err
	}

	if p.LinkedOwnerID != nil && *p.LinkedOwnerID == uuid.Nil {
		p.LinkedOwnerID = nil
	}

	if p.LinkedOwnerID != nil && *p.LinkedOwnerID == p.OwnerID {
		return ErrProfileLinkedToSelf
	}

	return nil
}
