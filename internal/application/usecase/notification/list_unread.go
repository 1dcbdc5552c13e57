// Package notification contains in-app notification use cases and the
// reminder sweep.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListUnreadInput represents the input for listing unread notifications.
type ListUnreadInput struct {
	UserID uuid.UUID
}

// ListUnreadOutput represents the output of listing unread notifications.
type ListUnreadOutput struct {
	Notifications []*entity.Notification
}

// ListUnreadUseCase lists the caller's unread notifications, newest first.
type ListUnreadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListUnreadUseCase creates a new ListUnreadUseCase instance.
func NewListUnreadUseCase(notificationRepo adapter.NotificationRepository) *ListUnreadUseCase {
	return &ListUnreadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the listing.
func (uc *ListUnreadUseCase) Execute(ctx context.Context, input ListUnreadInput) (*ListUnreadOutput, error) {
	notifications, err := uc.notificationRepo.FindUnread(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &ListUnreadOutput{
		Notifications: notifications,
	}, nil
}
