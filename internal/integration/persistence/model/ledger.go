// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type          string    `gorm:"type:varchar(20);not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	CompanyName   string    `gorm:"type:varchar(255)"`
	PhoneNumber   string    `gorm:"type:varchar(32)"`
	AccountNumber string    `gorm:"type:varchar(64)"`
	UPIID         string    `gorm:"column:upi_id;type:varchar(128)"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Type:          entity.AccountType(m.Type),
		Name:          m.Name,
		CompanyName:   m.CompanyName,
		PhoneNumber:   m.PhoneNumber,
		AccountNumber: m.AccountNumber,
		UPIID:         m.UPIID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:            account.ID,
		OwnerID:       account.OwnerID,
		Type:          string(account.Type),
		Name:          account.Name,
		CompanyName:   account.CompanyName,
		PhoneNumber:   account.PhoneNumber,
		AccountNumber: account.AccountNumber,
		UPIID:         account.UPIID,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

// LedgerBookModel represents the ledger_books table in the database.
type LedgerBookModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	BookDate  time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the LedgerBookModel.
func (LedgerBookModel) TableName() string {
	return "ledger_books"
}

// ToEntity converts a LedgerBookModel to a domain LedgerBook entity.
func (m *LedgerBookModel) ToEntity() *entity.LedgerBook {
	return &entity.LedgerBook{
		ID:        m.ID,
		AccountID: m.AccountID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		BookDate:  m.BookDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// LedgerBookFromEntity creates a LedgerBookModel from a domain LedgerBook entity.
func LedgerBookFromEntity(book *entity.LedgerBook) *LedgerBookModel {
	return &LedgerBookModel{
		ID:        book.ID,
		AccountID: book.AccountID,
		OwnerID:   book.OwnerID,
		Name:      book.Name,
		BookDate:  book.BookDate,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// LedgerEntryModel represents the ledger_entries table. Only raw figures are
// stored; pending and credit/debit are derived on read.
type LedgerEntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BillNo      string          `gorm:"type:varchar(64)"`
	EntryDate   time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:text"`
	Quantity    string          `gorm:"type:varchar(64)"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentType string          `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:          m.ID,
		BookID:      m.BookID,
		OwnerID:     m.OwnerID,
		BillNo:      m.BillNo,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Quantity:    m.Quantity,
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		PaymentType: entity.PaymentType(m.PaymentType),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:          entry.ID,
		BookID:      entry.BookID,
		OwnerID:     entry.OwnerID,
		BillNo:      entry.BillNo,
		EntryDate:   entry.EntryDate,
		Description: entry.Description,
		Quantity:    entry.Quantity,
		TotalAmount: entry.TotalAmount,
		PaidAmount:  entry.PaidAmount,
		PaymentType: string(entry.PaymentType),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
