// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/domain/entity"
)

// CreateConnectedGoalRequest represents the request body for shared goal creation.
type CreateConnectedGoalRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=255"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	TargetDate   string          `json:"target_date" binding:"required"`
	Participants []string        `json:"participants"`
}

// UpdateConnectedGoalRequest represents the request body for shared goal update.
type UpdateConnectedGoalRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	TargetDate   *string          `json:"target_date,omitempty"`
}

// AddContributionRequest represents the request body for a contribution.
type AddContributionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Kind        string          `json:"kind" binding:"required,oneof=income expense"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
}

// RespondInvitationRequest represents the request body for answering an invitation.
type RespondInvitationRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// ReinviteRequest represents the request body for re-inviting a declined participant.
type ReinviteRequest struct {
	ParticipantID string `json:"participant_id" binding:"required,uuid"`
}

// ParticipantResponse represents one participant of a shared goal.
type ParticipantResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status"`
}

// ConnectedGoalResponse represents a single shared goal in API responses.
type ConnectedGoalResponse struct {
	ID            string                `json:"id"`
	OwnerID       string                `json:"owner_id"`
	Name          string                `json:"name"`
	TargetAmount  decimal.Decimal       `json:"target_amount"`
	CurrentAmount decimal.Decimal       `json:"current_amount"`
	TargetDate    string                `json:"target_date"`
	Status        string                `json:"status"`
	IsStarred     bool                  `json:"is_starred"`
	Participants  []ParticipantResponse `json:"participants,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// ConnectedGoalListItemResponse represents a shared goal in list views: star
// flag plus accepted participant names only.
type ConnectedGoalListItemResponse struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date"`
	Status        string          `json:"status"`
	IsStarred     bool            `json:"is_starred"`
	Participants  []string        `json:"participants"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ConnectedGoalListResponse represents the response for listing shared goals.
type ConnectedGoalListResponse struct {
	Goals []ConnectedGoalListItemResponse `json:"goals"`
}

// ToConnectedGoalResponse converts a shared goal with its derived state to a response DTO.
func ToConnectedGoalResponse(goal *entity.ConnectedGoal, status entity.GoalStatus, isStarred bool, participants []*entity.Participant) ConnectedGoalResponse {
	participantResponses := make([]ParticipantResponse, len(participants))
	for i, participant := range participants {
		participantResponses[i] = ParticipantResponse{
			ID:     participant.ID.String(),
			UserID: participant.UserID.String(),
			Name:   participant.UserName,
			Status: string(participant.Status),
		}
	}

	return ConnectedGoalResponse{
		ID:            goal.ID.String(),
		OwnerID:       goal.OwnerID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate.Format("2006-01-02"),
		Status:        string(status),
		IsStarred:     isStarred,
		Participants:  participantResponses,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ToConnectedGoalListResponse converts list items to a ConnectedGoalListResponse.
func ToConnectedGoalListResponse(items []*entity.ConnectedGoalListItem) ConnectedGoalListResponse {
	goals := make([]ConnectedGoalListItemResponse, len(items))
	for i, item := range items {
		goals[i] = ConnectedGoalListItemResponse{
			ID:            item.Goal.ID.String(),
			OwnerID:       item.Goal.OwnerID.String(),
			Name:          item.Goal.Name,
			TargetAmount:  item.Goal.TargetAmount,
			CurrentAmount: item.Goal.CurrentAmount,
			TargetDate:    item.Goal.TargetDate.Format("2006-01-02"),
			Status:        string(item.Status),
			IsStarred:     item.IsStarred,
			Participants:  item.Participants,
			CreatedAt:     item.Goal.CreatedAt,
		}
	}
	return ConnectedGoalListResponse{
		Goals: goals,
	}
}

// ContributionResponse represents a single signed contribution in API responses.
type ContributionResponse struct {
	ID          string          `json:"id"`
	GoalID      string          `json:"goal_id"`
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ContributionListResponse represents the response for a goal's contributions.
type ContributionListResponse struct {
	Contributions []ContributionResponse `json:"contributions"`
}

// ToContributionResponse converts a domain Contribution to its response DTO.
func ToContributionResponse(contribution *entity.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:          contribution.ID.String(),
		GoalID:      contribution.GoalID.String(),
		UserID:      contribution.UserID.String(),
		UserName:    contribution.UserName,
		Amount:      contribution.Amount,
		Date:        contribution.Date.Format("2006-01-02"),
		Description: contribution.Description,
		CreatedAt:   contribution.CreatedAt,
	}
}

// ToContributionListResponse converts domain contributions to a list response.
func ToContributionListResponse(contributions []*entity.Contribution) ContributionListResponse {
	responses := make([]ContributionResponse, len(contributions))
	for i, contribution := range contributions {
		responses[i] = ToContributionResponse(contribution)
	}
	return ContributionListResponse{
		Contributions: responses,
	}
}

// ParticipantShareResponse represents one row of a contributions breakdown.
type ParticipantShareResponse struct {
	UserID   string          `json:"user_id"`
	UserName string          `json:"user_name"`
	Total    decimal.Decimal `json:"total"`
}

// BreakdownResponse represents the per-participant contribution totals.
type BreakdownResponse struct {
	Shares []ParticipantShareResponse `json:"shares"`
}

// ToBreakdownResponse converts participant shares to a BreakdownResponse.
func ToBreakdownResponse(shares []*entity.ParticipantShare) BreakdownResponse {
	responses := make([]ParticipantShareResponse, len(shares))
	for i, share := range shares {
		responses[i] = ParticipantShareResponse{
			UserID:   share.UserID.String(),
			UserName: share.UserName,
			Total:    share.Total,
		}
	}
	return BreakdownResponse{
		Shares: responses,
	}
}

// InvitationResponse represents one pending invitation from the invitee's side.
type InvitationResponse struct {
	ParticipantID string `json:"participant_id"`
	GoalID        string `json:"goal_id"`
	GoalName      string `json:"goal_name"`
	InvitedBy     string `json:"invited_by"`
}

// InvitationListResponse represents the response for listing invitations.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// ToInvitationListResponse converts domain invitations to a list response.
func ToInvitationListResponse(invitations []*entity.Invitation) InvitationListResponse {
	responses := make([]InvitationResponse, len(invitations))
	for i, invitation := range invitations {
		responses[i] = InvitationResponse{
			ParticipantID: invitation.ParticipantID.String(),
			GoalID:        invitation.GoalID.String(),
			GoalName:      invitation.GoalName,
			InvitedBy:     invitation.InvitedBy,
		}
	}
	return InvitationListResponse{
		Invitations: responses,
	}
}

// ToggleStarResponse represents the response for a star toggle.
type ToggleStarResponse struct {
	IsStarred bool `json:"is_starred"`
}
