// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/domain/entity"
)

// ConnectedGoalModel represents the connected_goals table in the database.
type ConnectedGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetDate    time.Time       `gorm:"type:date;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ConnectedGoalModel.
func (ConnectedGoalModel) TableName() string {
	return "connected_goals"
}

// ToEntity converts a ConnectedGoalModel to a domain ConnectedGoal entity.
func (m *ConnectedGoalModel) ToEntity() *entity.ConnectedGoal {
	return &entity.ConnectedGoal{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ConnectedGoalFromEntity creates a ConnectedGoalModel from a domain ConnectedGoal entity.
func ConnectedGoalFromEntity(goal *entity.ConnectedGoal) *ConnectedGoalModel {
	return &ConnectedGoalModel{
		ID:            goal.ID,
		OwnerID:       goal.OwnerID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ParticipantModel represents the goal_participants table in the database.
type ParticipantModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID  uuid.UUID `gorm:"type:uuid;not null;index:idx_participant_goal_user,unique"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_participant_goal_user,unique"`
	Status  string    `gorm:"type:varchar(20);not null"`
	AddedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ParticipantModel.
func (ParticipantModel) TableName() string {
	return "goal_participants"
}

// ToEntity converts a ParticipantModel to a domain Participant entity.
func (m *ParticipantModel) ToEntity() *entity.Participant {
	return &entity.Participant{
		ID:      m.ID,
		GoalID:  m.GoalID,
		UserID:  m.UserID,
		Status:  entity.ParticipantStatus(m.Status),
		AddedAt: m.AddedAt,
	}
}

// ParticipantFromEntity creates a ParticipantModel from a domain Participant entity.
func ParticipantFromEntity(participant *entity.Participant) *ParticipantModel {
	return &ParticipantModel{
		ID:      participant.ID,
		GoalID:  participant.GoalID,
		UserID:  participant.UserID,
		Status:  string(participant.Status),
		AddedAt: participant.AddedAt,
	}
}

// ContributionModel represents the goal_contributions table. Amount is stored
// signed: positive income, negative expense.
type ContributionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ContributionModel.
func (ContributionModel) TableName() string {
	return "goal_contributions"
}

// ToEntity converts a ContributionModel to a domain Contribution entity.
func (m *ContributionModel) ToEntity() *entity.Contribution {
	return &entity.Contribution{
		ID:          m.ID,
		GoalID:      m.GoalID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ContributionFromEntity creates a ContributionModel from a domain Contribution entity.
func ContributionFromEntity(contribution *entity.Contribution) *ContributionModel {
	return &ContributionModel{
		ID:          contribution.ID,
		GoalID:      contribution.GoalID,
		UserID:      contribution.UserID,
		Amount:      contribution.Amount,
		Date:        contribution.Date,
		Description: contribution.Description,
		CreatedAt:   contribution.CreatedAt,
	}
}

// GoalStarModel represents the goal_stars table: one row per user per goal.
type GoalStarModel struct {
	GoalID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalStarModel.
func (GoalStarModel) TableName() string {
	return "goal_stars"
}
