// Package connection contains CID-based user connection use cases.
package connection

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// RequestConnectionInput represents the input for sending a connection request.
type RequestConnectionInput struct {
	RequesterID uuid.UUID
	CID         string
}

// RequestConnectionOutput represents the output of a connection request.
type RequestConnectionOutput struct {
	Connection *entity.Connection
}

// RequestConnectionUseCase sends a connection request to the user behind a
// CID. At most one row can exist per user pair, in either direction.
type RequestConnectionUseCase struct {
	userRepo         adapter.UserRepository
	connectionRepo   adapter.ConnectionRepository
	notificationRepo adapter.NotificationRepository
}

// NewRequestConnectionUseCase creates a new RequestConnectionUseCase instance.
func NewRequestConnectionUseCase(
	userRepo adapter.UserRepository,
	connectionRepo adapter.ConnectionRepository,
	notificationRepo adapter.NotificationRepository,
) *RequestConnectionUseCase {
	return &RequestConnectionUseCase{
		userRepo:         userRepo,
		connectionRepo:   connectionRepo,
		notificationRepo: notificationRepo,
	}
}

// Execute performs the connection request.
func (uc *RequestConnectionUseCase) Execute(ctx context.Context, input RequestConnectionInput) (*RequestConnectionOutput, error) {
	cid := strings.ToUpper(strings.TrimSpace(input.CID))

	recipient, err := uc.userRepo.FindByCID(ctx, cid)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by cid: %w", err)
	}
	if recipient == nil {
		return nil, domainerror.NewConnectionError(
			domainerror.ErrCodeUserNotFoundByCID,
			"no user found for this cid",
			domainerror.ErrUserNotFoundByCID,
		)
	}

	if recipient.ID == input.RequesterID {
		return nil, domainerror.NewConnectionError(
			domainerror.ErrCodeCannotConnectSelf,
			"cannot connect to yourself",
			domainerror.ErrCannotConnectSelf,
		)
	}

	existing, err := uc.connectionRepo.FindBetween(ctx, input.RequesterID, recipient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing connection: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewConnectionError(
			domainerror.ErrCodeConnectionExists,
			"connection already exists",
			domainerror.ErrConnectionExists,
		)
	}

	connection := entity.NewConnection(input.RequesterID, recipient.ID)

	if err := uc.connectionRepo.Create(ctx, connection); err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	requester, err := uc.userRepo.FindByID(ctx, input.RequesterID)
	if err == nil {
		notification := entity.NewNotification(
			recipient.ID,
			fmt.Sprintf("%s sent you a connection request", requester.Name),
		)
		_ = uc.notificationRepo.Create(ctx, notification)
	}

	return &RequestConnectionOutput{
		Connection: connection,
	}, nil
}
