// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
}

// DeleteTransactionsRequest represents the request body for a bulk delete.
type DeleteTransactionsRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Category:    transaction.Category,
		Date:        transaction.Date.Format("2006-01-02"),
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts domain transactions to a TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}

// DashboardStatsResponse represents the dashboard aggregate response.
type DashboardStatsResponse struct {
	TotalBalance   decimal.Decimal `json:"total_balance"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	MonthlyExpense decimal.Decimal `json:"monthly_expense"`
	ActiveGoals    int             `json:"active_goals"`
}

// ToDashboardStatsResponse converts DashboardStats to its response DTO.
func ToDashboardStatsResponse(stats entity.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalBalance:   stats.TotalBalance,
		MonthlyIncome:  stats.MonthlyIncome,
		MonthlyExpense: stats.MonthlyExpense,
		ActiveGoals:    stats.ActiveGoals,
	}
}
