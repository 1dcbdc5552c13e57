// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=255"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	TargetDate   string          `json:"target_date" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	TargetDate   *string          `json:"target_date,omitempty"`
}

// ExtendDateRequest represents the request body for a target date extension.
type ExtendDateRequest struct {
	TargetDate string `json:"target_date" binding:"required"`
}

// AddFundRequest represents the request body for funding a goal.
type AddFundRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
}

// GoalResponse represents a single goal in API responses. Status is derived
// at response time.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date"`
	Status        string          `json:"status"`
	IsImportant   bool            `json:"is_important"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal with its derived status to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal, status entity.GoalStatus) GoalResponse {
	return GoalResponse{
		ID:            goal.ID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate.Format("2006-01-02"),
		Status:        string(status),
		IsImportant:   goal.IsImportant,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// FundingResponse represents a single funding row in API responses.
type FundingResponse struct {
	ID          string          `json:"id"`
	GoalID      string          `json:"goal_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FundingListResponse represents the response for a goal's funding history.
type FundingListResponse struct {
	Fundings []FundingResponse `json:"fundings"`
}

// ToFundingResponse converts a domain GoalFunding to a FundingResponse DTO.
func ToFundingResponse(funding *entity.GoalFunding) FundingResponse {
	return FundingResponse{
		ID:          funding.ID.String(),
		GoalID:      funding.GoalID.String(),
		Amount:      funding.Amount,
		Date:        funding.Date.Format("2006-01-02"),
		Description: funding.Description,
		CreatedAt:   funding.CreatedAt,
	}
}

// ToFundingListResponse converts domain fundings to a FundingListResponse.
func ToFundingListResponse(fundings []*entity.GoalFunding) FundingListResponse {
	responses := make([]FundingResponse, len(fundings))
	for i, funding := range fundings {
		responses[i] = ToFundingResponse(funding)
	}
	return FundingListResponse{
		Fundings: responses,
	}
}

// GoalStatsResponse represents per-status goal counts.
type GoalStatsResponse struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// ToGoalStatsResponse converts GoalStats to its response DTO.
func ToGoalStatsResponse(stats entity.GoalStats) GoalStatsResponse {
	return GoalStatsResponse{
		Total:     stats.Total,
		Active:    stats.Active,
		Completed: stats.Completed,
		Failed:    stats.Failed,
	}
}

// ToggleImportantResponse represents the response for an importance toggle.
type ToggleImportantResponse struct {
	IsImportant bool `json:"is_important"`
}
