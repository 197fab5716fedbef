package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CardBrand string

const (
	CardBrandVisa       CardBrand = "visa"
	CardBrandMastercard CardBrand = "mastercard"
	CardBrandElo        CardBrand = "elo"
	CardBrandAmex       CardBrand = "amex"
	CardBrandOther      CardBrand = "other"
)

// CreditCard is a revolving credit instrument. Its statement closes on
// ClosingDay and is due on DueDay of every month.
type CreditCard struct {
	DefaultModel
	OwnerID    uuid.UUID           `json:"ownerId" gorm:"index"`
	Name       string              `json:"name" example:"Platinum"`
	Brand      CardBrand           `json:"brand" example:"visa"` // Optional
	Issuer     string              `json:"issuer" example:"Itaú"`
	ClosingDay int                 `json:"closingDay" example:"20"`
	DueDay     int                 `json:"dueDay" example:"28"`
	Limit      decimal.NullDecimal `json:"limit" gorm:"type:DECIMAL(20,8)" swaggertype:"string" example:"5000.00"` // Optional
	Color      string              `json:"color" example:"#1a1f71"`
}

// BeforeSave validates the credit card and trims whitespace from all strings.
func (c *CreditCard) BeforeSave(_ *gorm.DB) error {
	if err := checkOwner(c.OwnerID); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(c.Name)
	c.Issuer = strings.TrimSpace(c.Issuer)
	c.Color = strings.TrimSpace(c.Color)

	if c.Name == "" {
		return ErrNameEmpty
	}

	switch c.Brand {
	case "", CardBrandVisa, CardBrandMastercard, CardBrandElo, CardBrandAmex, CardBrandOther:
	default:
		return ErrCardBrandInvalid
	}

	if c.ClosingDay < 1 || c.ClosingDay > 31 || c.DueDay < 1 || c.DueDay > 31 {
		return ErrDayOfMonthInvalid
	}

	if c.Limit.Valid && !c.Limit.Decimal.IsPositive() {
		return ErrLimitNotPositive
	}

	return nil
}
