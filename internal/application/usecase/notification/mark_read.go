// Package notification contains in-app notification use cases and the
// reminder sweep.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
)

// MarkReadInput represents the input for marking notifications read.
type MarkReadInput struct {
	UserID uuid.UUID
	IDs    []uuid.UUID
}

// MarkReadUseCase marks the caller's notifications as read. The update is
// user-scoped; ids belonging to other users are ignored.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the mark.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	if len(input.IDs) == 0 {
		return nil
	}
	if err := uc.notificationRepo.MarkRead(ctx, input.UserID, input.IDs); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
