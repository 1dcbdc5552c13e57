// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user in the FinMate system.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User represents a user in the FinMate system.
type User struct {
	ID           uuid.UUID
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	// CID is the human-shareable connection identifier other users search
	// for when establishing a connection.
	CID       string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User with default values.
func NewUser(name, phone, email, passwordHash, cid string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: passwordHash,
		CID:          cid,
		Role:         UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
