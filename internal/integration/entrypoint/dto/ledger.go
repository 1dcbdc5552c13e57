// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Type          string `json:"type" binding:"required,oneof=client supplier"`
	Name          string `json:"name" binding:"required,min=1,max=255"`
	CompanyName   string `json:"company_name"`
	PhoneNumber   string `json:"phone_number"`
	AccountNumber string `json:"account_number"`
	UPIID         string `json:"upi_id"`
}

// UpdateAccountRequest represents the request body for account update. The
// account type is immutable.
type UpdateAccountRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	CompanyName   *string `json:"company_name,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	UPIID         *string `json:"upi_id,omitempty"`
}

// AccountResponse represents a client/supplier account in API responses.
type AccountResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	CompanyName   string    `json:"company_name,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	UPIID         string    `json:"upi_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID.String(),
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

// ToAccountListResponse converts domain accounts to an AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = ToAccountResponse(account)
	}
	return AccountListResponse{
		Accounts: responses,
	}
}

// CreateBookRequest represents the request body for ledger book creation.
type CreateBookRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	BookDate string `json:"book_date" binding:"required"`
}

// UpdateBookRequest represents the request body for ledger book update.
type UpdateBookRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	BookDate *string `json:"book_date,omitempty"`
}

// BookResponse represents a ledger book in API responses.
type BookResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	BookDate  string    `json:"book_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookListResponse represents the response for listing an account's books.
type BookListResponse struct {
	Account AccountResponse `json:"account"`
	Books   []BookResponse  `json:"books"`
}

// ToBookResponse converts a domain LedgerBook to a BookResponse DTO.
func ToBookResponse(book *entity.LedgerBook) BookResponse {
	return BookResponse{
		ID:        book.ID.String(),
		AccountID: book.AccountID.String(),
		Name:      book.Name,
		BookDate:  book.BookDate.Format("2006-01-02"),
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// ToBookListResponse converts an account and its books to a BookListResponse.
func ToBookListResponse(account *entity.Account, books []*entity.LedgerBook) BookListResponse {
	responses := make([]BookResponse, len(books))
	for i, book := range books {
		responses[i] = ToBookResponse(book)
	}
	return BookListResponse{
		Account: ToAccountResponse(account),
		Books:   responses,
	}
}

// CreateEntryRequest represents the request body for ledger entry creation.
type CreateEntryRequest struct {
	BillNo      string          `json:"bill_no"`
	EntryDate   string          `json:"entry_date" binding:"required"`
	Description string          `json:"description"`
	Quantity    string          `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	PaymentType string          `json:"payment_type" binding:"required,oneof=cash online cheque pending"`
}

// UpdateEntryRequest represents the request body for ledger entry update.
type UpdateEntryRequest struct {
	BillNo      *string          `json:"bill_no,omitempty"`
	EntryDate   *string          `json:"entry_date,omitempty"`
	Description *string          `json:"description,omitempty"`
	Quantity    *string          `json:"quantity,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	PaidAmount  *decimal.Decimal `json:"paid_amount,omitempty"`
	PaymentType *string          `json:"payment_type,omitempty" binding:"omitempty,oneof=cash online cheque pending"`
}

// EntryResponse represents a ledger entry with its derived figures: pending
// balance, completion and the account-type credit/debit mapping.
type EntryResponse struct {
	ID          string          `json:"id"`
	BookID      string          `json:"book_id"`
	BillNo      string          `json:"bill_no,omitempty"`
	EntryDate   string          `json:"entry_date"`
	Description string          `json:"description,omitempty"`
	Quantity    string          `json:"quantity,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	PaymentType string          `json:"payment_type"`
	Pending     decimal.Decimal `json:"pending"`
	Completed   bool            `json:"completed"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LedgerSummaryResponse aggregates the entries of one book.
type LedgerSummaryResponse struct {
	TotalTurnover decimal.Decimal `json:"total_turnover"`
	TotalPending  decimal.Decimal `json:"total_pending"`
}

// EntryListResponse represents the response for listing a book's entries.
type EntryListResponse struct {
	Book    BookResponse          `json:"book"`
	Entries []EntryResponse       `json:"entries"`
	Summary LedgerSummaryResponse `json:"summary"`
}

// ToEntryResponse converts a LedgerEntryView to an EntryResponse DTO.
func ToEntryResponse(view *entity.LedgerEntryView) EntryResponse {
	return EntryResponse{
		ID:          view.Entry.ID.String(),
		BookID:      view.Entry.BookID.String(),
		BillNo:      view.Entry.BillNo,
		EntryDate:   view.Entry.EntryDate.Format("2006-01-02"),
		Description: view.Entry.Description,
		Quantity:    view.Entry.Quantity,
		TotalAmount: view.Entry.TotalAmount,
		PaidAmount:  view.Entry.PaidAmount,
		PaymentType: string(view.Entry.PaymentType),
		Pending:     view.Pending,
		Completed:   view.Completed,
		Credit:      view.Credit,
		Debit:       view.Debit,
		CreatedAt:   view.Entry.CreatedAt,
		UpdatedAt:   view.Entry.UpdatedAt,
	}
}

// ToEntryListResponse converts a book, its entry views and summary to a response.
func ToEntryListResponse(book *entity.LedgerBook, views []*entity.LedgerEntryView, summary entity.LedgerSummary) EntryListResponse {
	responses := make([]EntryResponse, len(views))
	for i, view := range views {
		responses[i] = ToEntryResponse(view)
	}
	return EntryListResponse{
		Book:    ToBookResponse(book),
		Entries: responses,
		Summary: LedgerSummaryResponse{
			TotalTurnover: summary.TotalTurnover,
			TotalPending:  summary.TotalPending,
		},
	}
}
