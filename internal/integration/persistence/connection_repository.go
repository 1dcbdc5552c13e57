// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

// connectionRepository implements the adapter.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository instance.
func NewConnectionRepository(db *gorm.DB) adapter.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// Create stores a new pending connection request.
func (r *connectionRepository) Create(ctx context.Context, connection *entity.Connection) error {
	connectionModel := model.ConnectionFromEntity(connection)
	result := r.db.WithContext(ctx).Create(connectionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a connection by its ID.
func (r *connectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Connection, error) {
	var connectionModel model.ConnectionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&connectionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return connectionModel.ToEntity(), nil
}

// FindBetween retrieves the connection row between two users regardless of
// direction.
func (r *connectionRepository) FindBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Connection, error) {
	var connectionModel model.ConnectionModel
	result := r.db.WithContext(ctx).
		Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		First(&connectionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return connectionModel.ToEntity(), nil
}

// UpdateStatus transitions a connection row.
func (r *connectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ConnectionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrConnectionNotFound
	}
	return nil
}

// Delete removes a connection row.
func (r *connectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ConnectionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrConnectionNotFound
	}
	return nil
}

// ListRequests retrieves incoming pending requests for a user, annotated with
// requester names and CIDs.
func (r *connectionRepository) ListRequests(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectionRequest, error) {
	var rows []struct {
		ConnectionID  uuid.UUID
		RequesterID   uuid.UUID
		RequesterName string
		RequesterCID  string
	}
	result := r.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Select("connections.id AS connection_id, users.id AS requester_id, users.name AS requester_name, users.cid AS requester_cid").
		Joins("JOIN users ON users.id = connections.requester_id").
		Where("connections.recipient_id = ? AND connections.status = ?", userID, entity.ConnectionStatusPending).
		Order("connections.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	requests := make([]*entity.ConnectionRequest, len(rows))
	for i, row := range rows {
		requests[i] = &entity.ConnectionRequest{
			ConnectionID:  row.ConnectionID,
			RequesterID:   row.RequesterID,
			RequesterName: row.RequesterName,
			RequesterCID:  row.RequesterCID,
		}
	}
	return requests, nil
}

// ListConnected retrieves every user connected to the given user. The join
// picks whichever end of the row is not the caller.
func (r *connectionRepository) ListConnected(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectedUser, error) {
	var rows []struct {
		ConnectionID uuid.UUID
		UserID       uuid.UUID
		Name         string
		CID          string
	}
	result := r.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Select("connections.id AS connection_id, users.id AS user_id, users.name AS name, users.cid AS cid").
		Joins("JOIN users ON users.id = CASE WHEN connections.requester_id = ? THEN connections.recipient_id ELSE connections.requester_id END", userID).
		Where("(connections.requester_id = ? OR connections.recipient_id = ?) AND connections.status = ?",
			userID, userID, entity.ConnectionStatusConnected).
		Order("users.name ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	connected := make([]*entity.ConnectedUser, len(rows))
	for i, row := range rows {
		connected[i] = &entity.ConnectedUser{
			ConnectionID: row.ConnectionID,
			UserID:       row.UserID,
			Name:         row.Name,
			CID:          row.CID,
		}
	}
	return connected, nil
}

// AreConnected reports whether an accepted connection exists between two users.
func (r *connectionRepository) AreConnected(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("status = ?", entity.ConnectionStatusConnected).
		Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
