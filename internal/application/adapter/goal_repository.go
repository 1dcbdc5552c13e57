// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// GoalRepository defines the interface for personal goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByOwner retrieves all goals of one owner, important first, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and its funding history. The delete is scoped to
	// the owner; zero affected rows surface as ErrGoalNotFound.
	Delete(ctx context.Context, goalID, ownerID uuid.UUID) error

	// AddFund appends a funding row and increments the goal's running amount
	// in a single database transaction. The increment is a relative
	// "current_amount = current_amount + ?" update so concurrent fundings
	// serialize on the row without an application-level read-modify-write.
	AddFund(ctx context.Context, funding *entity.GoalFunding) error

	// FindFundings retrieves a goal's funding history, newest first.
	FindFundings(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalFunding, error)
}
