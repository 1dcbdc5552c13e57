// Package connection contains CID-based user connection use cases.
package connection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListRequestsInput represents the input for listing incoming requests.
type ListRequestsInput struct {
	UserID uuid.UUID
}

// ListRequestsOutput represents the output of listing incoming requests.
type ListRequestsOutput struct {
	Requests []*entity.ConnectionRequest
}

// ListRequestsUseCase lists the caller's incoming pending connection requests.
type ListRequestsUseCase struct {
	connectionRepo adapter.ConnectionRepository
}

// NewListRequestsUseCase creates a new ListRequestsUseCase instance.
func NewListRequestsUseCase(connectionRepo adapter.ConnectionRepository) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		connectionRepo: connectionRepo,
	}
}

// Execute performs the listing.
func (uc *ListRequestsUseCase) Execute(ctx context.Context, input ListRequestsInput) (*ListRequestsOutput, error) {
	requests, err := uc.connectionRepo.ListRequests(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connection requests: %w", err)
	}

	return &ListRequestsOutput{
		Requests: requests,
	}, nil
}
