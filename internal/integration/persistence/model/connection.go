// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// ConnectionModel represents the connections table in the database.
type ConnectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ConnectionModel.
func (ConnectionModel) TableName() string {
	return "connections"
}

// ToEntity converts a ConnectionModel to a domain Connection entity.
func (m *ConnectionModel) ToEntity() *entity.Connection {
	return &entity.Connection{
		ID:          m.ID,
		RequesterID: m.RequesterID,
		RecipientID: m.RecipientID,
		Status:      entity.ConnectionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// ConnectionFromEntity creates a ConnectionModel from a domain Connection entity.
func ConnectionFromEntity(connection *entity.Connection) *ConnectionModel {
	return &ConnectionModel{
		ID:          connection.ID,
		RequesterID: connection.RequesterID,
		RecipientID: connection.RecipientID,
		Status:      string(connection.Status),
		CreatedAt:   connection.CreatedAt,
	}
}
