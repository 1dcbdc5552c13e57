// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. No status column
// exists on purpose: status is derived on read.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetDate    time.Time       `gorm:"type:date;not null"`
	IsImportant   bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		IsImportant:   m.IsImportant,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		OwnerID:       goal.OwnerID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate,
		IsImportant:   goal.IsImportant,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// GoalFundingModel represents the goal_fundings table in the database.
type GoalFundingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalFundingModel.
func (GoalFundingModel) TableName() string {
	return "goal_fundings"
}

// ToEntity converts a GoalFundingModel to a domain GoalFunding entity.
func (m *GoalFundingModel) ToEntity() *entity.GoalFunding {
	return &entity.GoalFunding{
		ID:          m.ID,
		GoalID:      m.GoalID,
		OwnerID:     m.OwnerID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// GoalFundingFromEntity creates a GoalFundingModel from a domain GoalFunding entity.
func GoalFundingFromEntity(funding *entity.GoalFunding) *GoalFundingModel {
	return &GoalFundingModel{
		ID:          funding.ID,
		GoalID:      funding.GoalID,
		OwnerID:     funding.OwnerID,
		Amount:      funding.Amount,
		Date:        funding.Date,
		Description: funding.Description,
		CreatedAt:   funding.CreatedAt,
	}
}
