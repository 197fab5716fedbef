package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ScheduledIncomeStatus string

const (
	ScheduledIncomeStatusPending  ScheduledIncomeStatus = "pending"
	ScheduledIncomeStatusReceived ScheduledIncomeStatus = "received"
)

// ScheduledIncome is income that is expected but has not been received.
//
// The amount is a forecast, the confirmed amount can differ.
type ScheduledIncome struct {
	DefaultModel
	OwnerID       uuid.UUID             `json:"ownerId" gorm:"index"`
	Description   string                `json:"description" example:"Salary"`
	Amount        decimal.Decimal       `json:"amount" gorm:"type:DECIMAL(20,8)" example:"5400.00"`
	ExpectedDate  time.Time             `json:"expectedDate" gorm:"index" example:"2024-02-05T00:00:00Z"`
	Notes         string                `json:"notes" example:"Includes vacation bonus"`
	Status        ScheduledIncomeStatus `json:"status" example:"pending"`
	TransactionID *uuid.UUID            `json:"transactionId"` // The income transaction created on receipt
}

// BeforeSave validates the scheduled income and trims whitespace from all strings.
func (s *ScheduledIncome) BeforeSave(_ *gorm.DB) error {
	if err := checkOwner(s.OwnerID); err != nil {
		return err
	}

	s.Description = strings.TrimSpace(s.Description)
	s.Notes = strings.TrimSpace(s.Notes)

	if s.Description == "" {
		return ErrDescriptionEmpty
	}

	if !s.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if s.ExpectedDate.IsZero() {
		return ErrDateMissing
	}
	s.ExpectedDate = calendarDate(s.ExpectedDate)

	if s.Status == "" {
		s.Status = ScheduledIncomeStatusPending
	}

	if s.Status != ScheduledIncomeStatusPending && s.Status != ScheduledIncomeStatusReceived {
		return ErrScheduledIncomeStatusInvalid
	}

	return nil
}

// AfterFind enforces UTC for the expected date.
func (s *ScheduledIncome) AfterFind(tx *gorm.DB) error {
	if err := s.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	s.ExpectedDate = s.ExpectedDate.In(time.UTC)
	return nil
}

// IsPending reports if the income has not been received yet.
func (s ScheduledIncome) IsPending() bool {
	return s.Status == ScheduledIncomeStatusPending
}
