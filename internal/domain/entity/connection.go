// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus represents the state of a connection between two users.
type ConnectionStatus string

const (
	ConnectionStatusPending   ConnectionStatus = "pending"
	ConnectionStatusConnected ConnectionStatus = "connected"
)

// Connection links two users found through their CIDs. Connected users form
// the candidate participant set for connected goals.
type Connection struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	RecipientID uuid.UUID
	Status      ConnectionStatus
	CreatedAt   time.Time
}

// NewConnection creates a pending connection request.
func NewConnection(requesterID, recipientID uuid.UUID) *Connection {
	return &Connection{
		ID:          uuid.New(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      ConnectionStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// Involves reports whether the given user is one of the two ends.
func (c *Connection) Involves(userID uuid.UUID) bool {
	return c.RequesterID == userID || c.RecipientID == userID
}

// OtherSide returns the peer of the given user in this connection.
func (c *Connection) OtherSide(userID uuid.UUID) uuid.UUID {
	if c.RequesterID == userID {
		return c.RecipientID
	}
	return c.RequesterID
}

// ConnectionRequest is an incoming pending request from the recipient's side.
type ConnectionRequest struct {
	ConnectionID  uuid.UUID
	RequesterID   uuid.UUID
	RequesterName string
	RequesterCID  string
}

// ConnectedUser is one peer in a user's connection list.
type ConnectedUser struct {
	ConnectionID uuid.UUID
	UserID       uuid.UUID
	Name         string
	CID          string
}
